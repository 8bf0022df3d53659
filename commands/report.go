package commands

import (
	"io"
	"text/template"

	"github.com/uhppoted/uhppoted-app-gcs/acl"
)

var aclFormat = `{{ .Title }}:
{{ range .Rules }}	{{ .Role }} {{ .Entity }}
{{ end }}`

var permissionsFormat = `Permissions for {{ .Email }}:
{{ range .Roles }}	{{ . }}
{{ end }}`

var confirmationFormat = `{{ .Action }} {{ if .Default }}default {{ end }}{{ .Role }} permission for {{ .Email }} {{ if eq .Action "Added" }}to{{ else }}from{{ end }} {{ .Name }}
`

type aclReport struct {
	Title string
	Rules []acl.Rule
}

type permissionsReport struct {
	Email string
	Roles []acl.Role
}

type confirmation struct {
	Action  string
	Default bool
	Role    acl.Role
	Email   string
	Name    string
}

// printACL lists the ACL entities grouped by role (OWNER, then WRITER, then READER),
// restricted to the roles that apply to the target.
func printACL(w io.Writer, target acl.Target, list acl.ACL) error {
	rpt := aclReport{
		Title: title(target),
		Rules: []acl.Rule{},
	}

	for _, role := range target.Scope.Roles() {
		for _, entity := range list.Holders(role) {
			rpt.Rules = append(rpt.Rules, acl.Rule{Entity: entity, Role: role})
		}
	}

	return render(w, aclFormat, rpt)
}

func printPermissions(w io.Writer, target acl.Target, list acl.ACL, email string) error {
	rpt := permissionsReport{
		Email: email,
		Roles: []acl.Role{},
	}

	entity := acl.Entity(email)
	for _, role := range target.Scope.Roles() {
		if list.Holds(entity, role) {
			rpt.Roles = append(rpt.Roles, role)
		}
	}

	return render(w, permissionsFormat, rpt)
}

func confirm(w io.Writer, action string, target acl.Target, role acl.Role, email string) error {
	name := target.Bucket
	if target.Scope == acl.Object {
		name = target.Object
	}

	return render(w, confirmationFormat, confirmation{
		Action:  action,
		Default: target.Scope == acl.DefaultObject,
		Role:    role,
		Email:   email,
		Name:    name,
	})
}

func title(target acl.Target) string {
	switch target.Scope {
	case acl.DefaultObject:
		return "Default ACL for " + target.Bucket

	case acl.Object:
		return "ACL for " + target.Object + " in " + target.Bucket

	default:
		return "ACL for " + target.Bucket
	}
}

func render(w io.Writer, format string, data any) error {
	t, err := template.New("report").Parse(format)
	if err != nil {
		return err
	}

	return t.Execute(w, data)
}
