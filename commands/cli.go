package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/uhppoted-app-gcs/acl"
)

// CLI holds the command set and the state shared by the ACL operations.
type CLI struct {
	Options Options
	Flags   *flag.FlagSet
	Out     io.Writer
	Connect func(ctx context.Context, options Options) (acl.Store, error)

	commands []uhppoted.Command
	help     uhppoted.Command
}

func NewCLI(options Options, flags *flag.FlagSet) *CLI {
	cli := CLI{
		Options: options,
		Flags:   flags,
		Out:     os.Stdout,
		Connect: Connect,
	}

	ops := make([]operation, len(operations))
	copy(ops, operations)

	for i := range ops {
		cli.commands = append(cli.commands, &ops[i])
	}

	cli.commands = append(cli.commands, &uhppoted.Version{
		Application: APP,
		Version:     VERSION,
	})

	cli.help = uhppoted.NewHelp(APP, cli.commands, nil)

	return &cli
}

// Dispatch runs the command named by the first command line argument, with the
// remaining arguments as its positional parameters. An unknown (or missing) command
// prints the usage and is not an error.
func (cli *CLI) Dispatch(ctx context.Context) error {
	cmd, err := uhppoted.Parse(cli.commands, nil, cli.help)
	if err != nil {
		return err
	}

	if cmd == nil {
		cli.usage()
		return nil
	}

	return cmd.Execute(ctx, cli)
}

func (cli *CLI) connect(ctx context.Context) (acl.Store, error) {
	if cli.Connect == nil {
		return Connect(ctx, cli.Options)
	}

	return cli.Connect(ctx, cli.Options)
}

func (cli *CLI) usage() {
	w := cli.Out

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Usage: %s [options] <command> [arguments]\n", APP)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Commands:")
	for _, c := range cli.commands {
		usage := c.Name()
		if u := c.Usage(); u != "" {
			usage = u
		}

		fmt.Fprintf(w, "    %-52s %s\n", usage, c.Description())
	}
	fmt.Fprintf(w, "    %-52s %s\n", "help [command]", cli.help.Description())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Environment variables:")
	fmt.Fprintln(w, "    GOOGLE_CLOUD_PROJECT must be set to your Google Cloud project ID")

	helpOptions(cli.Flags, w)
	fmt.Fprintln(w)
}
