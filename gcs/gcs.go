package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/uhppoted/uhppoted-app-gcs/acl"
)

// handle is the subset of *storage.ACLHandle used by the store.
type handle interface {
	List(ctx context.Context) ([]storage.ACLRule, error)
	Set(ctx context.Context, entity storage.ACLEntity, role storage.ACLRole) error
	Delete(ctx context.Context, entity storage.ACLEntity) error
}

type Store struct {
	project string
	client  *storage.Client
	handle  func(acl.Target) handle
}

// NewStore opens a Google Cloud Storage client. An empty credentials file uses the
// application default credentials.
func NewStore(ctx context.Context, project, credentials string) (*Store, error) {
	client, err := storage.NewClient(ctx, clientOptions(credentials)...)
	if err != nil {
		return nil, fmt.Errorf("error creating GCS client (%w)", err)
	}

	s := Store{
		project: project,
		client:  client,
	}

	s.handle = s.resolve

	return &s, nil
}

func (s *Store) List(ctx context.Context, target acl.Target) (acl.ACL, error) {
	if s.project == "" {
		return nil, acl.ErrNoProject
	}

	rules, err := s.handle(target).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", target, err)
	}

	list := acl.ACL{}
	for _, r := range rules {
		list = append(list, acl.Rule{
			Entity: string(r.Entity),
			Role:   acl.Role(r.Role),
		})
	}

	return list, nil
}

func (s *Store) Grant(ctx context.Context, target acl.Target, entity string, role acl.Role) error {
	if s.project == "" {
		return acl.ErrNoProject
	}

	if err := s.handle(target).Set(ctx, storage.ACLEntity(entity), storage.ACLRole(role)); err != nil {
		return fmt.Errorf("%v: %w", target, err)
	}

	return nil
}

// Revoke deletes the entity's entry from the ACL, whatever role it holds.
func (s *Store) Revoke(ctx context.Context, target acl.Target, entity string) error {
	if s.project == "" {
		return acl.ErrNoProject
	}

	if err := s.handle(target).Delete(ctx, storage.ACLEntity(entity)); err != nil {
		return fmt.Errorf("%v: %w", target, err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}

	return nil
}

// clientOptions does not set a quota project: billing ACL calls to GOOGLE_CLOUD_PROJECT
// would need serviceusage.services.use on that project.
func clientOptions(credentials string) []option.ClientOption {
	options := []option.ClientOption{}
	if credentials != "" {
		options = append(options, option.WithCredentialsFile(credentials))
	}

	return options
}

func (s *Store) resolve(target acl.Target) handle {
	bucket := s.client.Bucket(target.Bucket)

	switch target.Scope {
	case acl.DefaultObject:
		return bucket.DefaultObjectACL()

	case acl.Object:
		return bucket.Object(target.Object).ACL()

	default:
		return bucket.ACL()
	}
}
