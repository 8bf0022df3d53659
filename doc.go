// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package uhppoted-app-gcs reads and updates the access control lists (ACLs) of cloud storage buckets and files.

uhppoted-app-gcs is a command line tool that makes exactly one ACL call to the storage service per invocation
and prints the result. Google Cloud Storage is the default provider, with Amazon S3 available via --provider s3
(S3 has no equivalent of a bucket's default object ACL).

uhppoted-app-gcs supports the following commands:

  - print_bucket_acl, print_bucket_acl_for_user and print_bucket_default_acl
  - add_bucket_owner and remove_bucket_owner
  - add_bucket_default_owner and remove_bucket_default_owner
  - print_file_acl and print_file_acl_for_user
  - add_file_owner and remove_file_owner

The project ID is taken from the GOOGLE_CLOUD_PROJECT environment variable, which can also be set in a .env file.
*/
package gcs
