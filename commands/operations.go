package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/uhppoted/uhppoted-app-gcs/acl"
)

type action int

const (
	list action = iota
	listForUser
	grant
	revoke
)

// operation describes one of the ACL commands. All of them share the same Execute:
// bind the positional arguments, open the store, make exactly one ACL call and print
// the result.
type operation struct {
	name        string
	action      action
	scope       acl.Scope
	role        acl.Role
	params      []string
	description string
	flagset     *flag.FlagSet
}

var operations = []operation{
	{
		name:        "print_bucket_acl",
		action:      list,
		scope:       acl.Bucket,
		params:      []string{"bucket"},
		description: "Print bucket Access Control List",
	},
	{
		name:        "print_bucket_acl_for_user",
		action:      listForUser,
		scope:       acl.Bucket,
		params:      []string{"bucket", "email"},
		description: "Print bucket ACL for an email",
	},
	{
		name:        "add_bucket_owner",
		action:      grant,
		scope:       acl.Bucket,
		role:        acl.Owner,
		params:      []string{"bucket", "email"},
		description: "Add a new OWNER to a bucket",
	},
	{
		name:        "remove_bucket_owner",
		action:      revoke,
		scope:       acl.Bucket,
		role:        acl.Owner,
		params:      []string{"bucket", "email"},
		description: "Remove an OWNER from a bucket",
	},
	{
		name:        "print_bucket_default_acl",
		action:      list,
		scope:       acl.DefaultObject,
		params:      []string{"bucket"},
		description: "Print the default object ACL for a bucket",
	},
	{
		name:        "add_bucket_default_owner",
		action:      grant,
		scope:       acl.DefaultObject,
		role:        acl.Owner,
		params:      []string{"bucket", "email"},
		description: "Add a default OWNER for a bucket",
	},
	{
		name:        "remove_bucket_default_owner",
		action:      revoke,
		scope:       acl.DefaultObject,
		role:        acl.Owner,
		params:      []string{"bucket", "email"},
		description: "Remove a default OWNER from a bucket",
	},
	{
		name:        "print_file_acl",
		action:      list,
		scope:       acl.Object,
		params:      []string{"bucket", "file"},
		description: "Print file ACL",
	},
	{
		name:        "print_file_acl_for_user",
		action:      listForUser,
		scope:       acl.Object,
		params:      []string{"bucket", "file", "email"},
		description: "Print file ACL for an email",
	},
	{
		name:        "add_file_owner",
		action:      grant,
		scope:       acl.Object,
		role:        acl.Owner,
		params:      []string{"bucket", "file", "email"},
		description: "Add an OWNER to a file",
	},
	{
		name:        "remove_file_owner",
		action:      revoke,
		scope:       acl.Object,
		role:        acl.Owner,
		params:      []string{"bucket", "file", "email"},
		description: "Remove an OWNER from a file",
	},
}

func (op *operation) Name() string {
	return op.name
}

func (op *operation) Description() string {
	return op.description
}

func (op *operation) Usage() string {
	usage := []string{op.name}
	for _, p := range op.params {
		usage = append(usage, fmt.Sprintf("<%v>", p))
	}

	return strings.Join(usage, " ")
}

func (op *operation) FlagSet() *flag.FlagSet {
	if op.flagset == nil {
		op.flagset = flag.NewFlagSet(op.name, flag.ExitOnError)
	}

	return op.flagset
}

func (op *operation) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [options] %s\n", APP, op.Usage())
	fmt.Println()
	fmt.Printf("    %s\n", op.description)
	fmt.Println()
	fmt.Println("    Arguments:")
	fmt.Println()
	for _, p := range op.params {
		fmt.Printf("      %-8s (required) %s\n", p, map[string]string{
			"bucket": "Storage bucket name",
			"file":   "Name of a file in the storage bucket",
			"email":  "Email (or ACL entity) to associate with the permission",
		}[p])
	}
	fmt.Println()
}

// Execute expects the context and the *CLI as arguments. The positional parameters are
// the flagset arguments left over after parsing the command line.
func (op *operation) Execute(args ...any) error {
	ctx := context.Background()
	var cli *CLI

	for _, arg := range args {
		switch v := arg.(type) {
		case context.Context:
			ctx = v
		case *CLI:
			cli = v
		}
	}

	if cli == nil {
		return fmt.Errorf("%v: missing CLI", op.name)
	}

	return op.execute(ctx, cli, op.FlagSet().Args())
}

func (op *operation) execute(ctx context.Context, cli *CLI, args []string) error {
	if len(args) < len(op.params) {
		return fmt.Errorf("%v: missing <%v>", op.name, op.params[len(args)])
	} else if len(args) > len(op.params) {
		warnf("%v: ignoring extra arguments %v", op.name, args[len(op.params):])
	}

	values := map[string]string{}
	for i, p := range op.params {
		values[p] = args[i]
	}

	target := acl.Target{
		Scope:  op.scope,
		Bucket: values["bucket"],
		Object: values["file"],
	}

	email := values["email"]

	store, err := cli.connect(ctx)
	if err != nil {
		return err
	}

	defer store.Close()

	switch op.action {
	case list:
		debugf("%v  fetching ACL for %v", op.name, target)

		rules, err := store.List(ctx, target)
		if err != nil {
			return err
		}

		return printACL(cli.Out, target, rules)

	case listForUser:
		debugf("%v  fetching ACL for %v", op.name, target)

		rules, err := store.List(ctx, target)
		if err != nil {
			return err
		}

		return printPermissions(cli.Out, target, rules, email)

	case grant:
		debugf("%v  granting %v to %v on %v", op.name, op.role, email, target)

		if err := store.Grant(ctx, target, acl.Entity(email), op.role); err != nil {
			return err
		}

		return confirm(cli.Out, "Added", target, op.role, email)

	case revoke:
		debugf("%v  revoking %v from %v on %v", op.name, op.role, email, target)

		if err := store.Revoke(ctx, target, acl.Entity(email)); err != nil {
			return err
		}

		return confirm(cli.Out, "Removed", target, op.role, email)

	default:
		return fmt.Errorf("%v: unknown ACL operation (%v)", op.name, op.action)
	}
}
