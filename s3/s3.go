package s3

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/uhppoted/uhppoted-app-gcs/acl"
)

const (
	allUsers           = "http://acs.amazonaws.com/groups/global/AllUsers"
	authenticatedUsers = "http://acs.amazonaws.com/groups/global/AuthenticatedUsers"
)

var permissions = map[acl.Role]string{
	acl.Owner:  awss3.PermissionFullControl,
	acl.Writer: awss3.PermissionWrite,
	acl.Reader: awss3.PermissionRead,
}

// Store maps bucket and object ACLs onto S3 grants. S3 replaces the whole access
// control policy on every update so mutations are a get/put pair.
type Store struct {
	api s3iface.S3API
}

// NewStore creates an S3 session. An empty credentials file uses the default AWS
// credentials chain.
func NewStore(file, region string) (*Store, error) {
	cfg := aws.NewConfig().WithRegion(region)

	if file != "" {
		credentials, err := getAWSCredentials(file)
		if err != nil {
			return nil, err
		}

		cfg = cfg.WithCredentials(credentials)
	}

	ss, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating AWS session (%w)", err)
	}

	return &Store{
		api: awss3.New(ss),
	}, nil
}

func (s *Store) List(ctx context.Context, target acl.Target) (acl.ACL, error) {
	policy, err := s.get(ctx, target)
	if err != nil {
		return nil, err
	}

	list := acl.ACL{}
	for _, g := range policy.Grants {
		if role, ok := toRole(g); ok {
			list = append(list, acl.Rule{
				Entity: entity(g.Grantee),
				Role:   role,
			})
		}
	}

	return list, nil
}

func (s *Store) Grant(ctx context.Context, target acl.Target, entity string, role acl.Role) error {
	grantee, err := toGrantee(entity)
	if err != nil {
		return err
	}

	permission, ok := permissions[role]
	if !ok {
		return fmt.Errorf("%w: role %v", acl.ErrUnsupported, role)
	}

	policy, err := s.get(ctx, target)
	if err != nil {
		return err
	}

	for _, g := range policy.Grants {
		if matches(g.Grantee, entity) && aws.StringValue(g.Permission) == permission {
			return nil
		}
	}

	policy.Grants = append(policy.Grants, &awss3.Grant{
		Grantee:    grantee,
		Permission: aws.String(permission),
	})

	return s.put(ctx, target, policy)
}

// Revoke removes every grant for the entity, not just FULL_CONTROL. S3 reports email
// grantees as canonical users, so an email only matches grants that still carry the
// address - otherwise use the 'id-<canonical ID>' entity from the ACL listing.
func (s *Store) Revoke(ctx context.Context, target acl.Target, entity string) error {
	policy, err := s.get(ctx, target)
	if err != nil {
		return err
	}

	grants := []*awss3.Grant{}
	for _, g := range policy.Grants {
		if !matches(g.Grantee, entity) {
			grants = append(grants, g)
		}
	}

	if len(grants) == len(policy.Grants) {
		return fmt.Errorf("%v: %w for %v", target, acl.ErrNotFound, entity)
	}

	policy.Grants = grants

	return s.put(ctx, target, policy)
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) get(ctx context.Context, target acl.Target) (*awss3.AccessControlPolicy, error) {
	switch target.Scope {
	case acl.Bucket:
		rq := awss3.GetBucketAclInput{
			Bucket: aws.String(target.Bucket),
		}

		response, err := s.api.GetBucketAclWithContext(ctx, &rq)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", target, err)
		}

		return &awss3.AccessControlPolicy{Grants: response.Grants, Owner: response.Owner}, nil

	case acl.Object:
		rq := awss3.GetObjectAclInput{
			Bucket: aws.String(target.Bucket),
			Key:    aws.String(target.Object),
		}

		response, err := s.api.GetObjectAclWithContext(ctx, &rq)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", target, err)
		}

		return &awss3.AccessControlPolicy{Grants: response.Grants, Owner: response.Owner}, nil

	default:
		return nil, fmt.Errorf("%w: S3 has no default object ACL", acl.ErrUnsupported)
	}
}

func (s *Store) put(ctx context.Context, target acl.Target, policy *awss3.AccessControlPolicy) error {
	var err error

	switch target.Scope {
	case acl.Bucket:
		_, err = s.api.PutBucketAclWithContext(ctx, &awss3.PutBucketAclInput{
			Bucket:              aws.String(target.Bucket),
			AccessControlPolicy: policy,
		})

	case acl.Object:
		_, err = s.api.PutObjectAclWithContext(ctx, &awss3.PutObjectAclInput{
			Bucket:              aws.String(target.Bucket),
			Key:                 aws.String(target.Object),
			AccessControlPolicy: policy,
		})

	default:
		return fmt.Errorf("%w: S3 has no default object ACL", acl.ErrUnsupported)
	}

	if err != nil {
		return fmt.Errorf("%v: %w", target, err)
	}

	return nil
}

func toRole(g *awss3.Grant) (acl.Role, bool) {
	for role, permission := range permissions {
		if aws.StringValue(g.Permission) == permission {
			return role, true
		}
	}

	return "", false
}

func entity(grantee *awss3.Grantee) string {
	if grantee == nil {
		return ""
	}

	switch aws.StringValue(grantee.Type) {
	case awss3.TypeAmazonCustomerByEmail:
		return "user-" + aws.StringValue(grantee.EmailAddress)

	case awss3.TypeGroup:
		switch uri := aws.StringValue(grantee.URI); uri {
		case allUsers:
			return "allUsers"
		case authenticatedUsers:
			return "allAuthenticatedUsers"
		default:
			return "group-" + uri
		}

	default:
		return "id-" + aws.StringValue(grantee.ID)
	}
}

func matches(grantee *awss3.Grantee, e string) bool {
	if grantee == nil {
		return false
	}

	if email, ok := acl.Email(e); ok && aws.StringValue(grantee.EmailAddress) == email {
		return true
	}

	return entity(grantee) == e
}

func toGrantee(entity string) (*awss3.Grantee, error) {
	if email, ok := acl.Email(entity); ok {
		return &awss3.Grantee{
			Type:         aws.String(awss3.TypeAmazonCustomerByEmail),
			EmailAddress: aws.String(email),
		}, nil
	}

	switch entity {
	case "allUsers":
		return &awss3.Grantee{Type: aws.String(awss3.TypeGroup), URI: aws.String(allUsers)}, nil

	case "allAuthenticatedUsers":
		return &awss3.Grantee{Type: aws.String(awss3.TypeGroup), URI: aws.String(authenticatedUsers)}, nil
	}

	if id := regexp.MustCompile(`^id-(\S+)$`).FindStringSubmatch(entity); len(id) == 2 {
		return &awss3.Grantee{Type: aws.String(awss3.TypeCanonicalUser), ID: aws.String(id[1])}, nil
	}

	return nil, fmt.Errorf("%w: S3 grantee '%v'", acl.ErrUnsupported, entity)
}

func getAWSCredentials(file string) (*credentials.Credentials, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	awsKeyID := ""
	awsSecret := ""
	re := regexp.MustCompile(`\s*(aws_access_key_id|aws_secret_access_key)\s*=\s*(\S+)\s*`)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		match := re.FindStringSubmatch(scanner.Text())
		if len(match) == 3 {
			switch match[1] {
			case "aws_access_key_id":
				awsKeyID = match[2]
			case "aws_secret_access_key":
				awsSecret = match[2]
			}
		}
	}

	if awsKeyID == "" {
		return nil, fmt.Errorf("invalid AWS credentials - missing 'aws_access_key_id'")
	}

	if awsSecret == "" {
		return nil, fmt.Errorf("invalid AWS credentials - missing 'aws_secret_access_key'")
	}

	return credentials.NewStaticCredentials(awsKeyID, awsSecret, ""), nil
}
