package acl

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store is implemented by the storage backends. Every call is a remote call - nothing
// is cached between invocations.
type Store interface {
	List(ctx context.Context, target Target) (ACL, error)
	Grant(ctx context.Context, target Target, entity string, role Role) error
	Revoke(ctx context.Context, target Target, entity string) error
	Close() error
}

var ErrUnsupported = errors.New("not supported")
var ErrNotFound = errors.New("no ACL entry")
var ErrNoProject = errors.New("missing project ID (set GOOGLE_CLOUD_PROJECT)")

type Role string

const (
	Owner  Role = "OWNER"
	Writer Role = "WRITER"
	Reader Role = "READER"
)

type Scope int

const (
	Bucket Scope = iota
	DefaultObject
	Object
)

func (s Scope) String() string {
	return []string{"bucket", "default", "object"}[s]
}

// Roles returns the roles applicable to the scope, in reporting order. Objects (and the
// default object template) have no WRITER role.
func (s Scope) Roles() []Role {
	if s == Bucket {
		return []Role{Owner, Writer, Reader}
	}

	return []Role{Owner, Reader}
}

type Target struct {
	Scope  Scope
	Bucket string
	Object string
}

func (t Target) String() string {
	switch t.Scope {
	case DefaultObject:
		return fmt.Sprintf("%v (default)", t.Bucket)

	case Object:
		return fmt.Sprintf("%v/%v", t.Bucket, t.Object)

	default:
		return t.Bucket
	}
}

type Rule struct {
	Entity string
	Role   Role
}

func (r Rule) String() string {
	return fmt.Sprintf("%v %v", r.Role, r.Entity)
}

type ACL []Rule

// Holders returns the entities granted the role, in ACL order.
func (a ACL) Holders(role Role) []string {
	entities := []string{}
	for _, r := range a {
		if r.Role == role {
			entities = append(entities, r.Entity)
		}
	}

	return entities
}

// Holds returns true if the entity has been granted the role.
func (a ACL) Holds(entity string, role Role) bool {
	for _, r := range a {
		if r.Entity == entity && r.Role == role {
			return true
		}
	}

	return false
}

var prefixes = []string{"user-", "group-", "domain-", "project-"}

// Entity converts an email address to a 'user-' entity. Arguments that are already
// entities are returned unchanged.
func Entity(email string) string {
	if email == "allUsers" || email == "allAuthenticatedUsers" {
		return email
	}

	for _, p := range prefixes {
		if strings.HasPrefix(email, p) {
			return email
		}
	}

	return "user-" + email
}

// Email returns the email address for a 'user-' entity.
func Email(entity string) (string, bool) {
	if email, ok := strings.CutPrefix(entity, "user-"); ok && strings.Contains(email, "@") {
		return email, true
	}

	return "", false
}
