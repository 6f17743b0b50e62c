package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/welgo/internal/errors"
)

// PutObjectAPI is the part of the S3 client used by S3Sink. *s3.Client
// satisfies it.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads pages to an S3 bucket.
//
// Example usage:
//
//	client, _ := publish.NewS3Client(publish.S3Options{Region: "eu-west-1"})
//	sink := publish.NewS3Sink(client, "my-bucket", "site/")
type S3Sink struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Sink creates a new S3 sink.
//
// Parameters:
//   - client: S3 client from aws-sdk-go-v2, or anything with PutObject
//   - bucket: S3 bucket name
//   - prefix: Key prefix for pages (e.g., "site/")
func NewS3Sink(client PutObjectAPI, bucket, prefix string) *S3Sink {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// WithCacheControl sets the Cache-Control header stored with every object.
func (s *S3Sink) WithCacheControl(v string) *S3Sink {
	s.cacheControl = v
	return s
}

// Put uploads content to bucket/prefix+key.
func (s *S3Sink) Put(ctx context.Context, key string, content []byte) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + strings.TrimPrefix(key, "/")),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(ContentType(key)),
	}
	if s.cacheControl != "" {
		input.CacheControl = aws.String(s.cacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return errors.New("E061").
			WithDetail(fmt.Sprintf("PutObject %s failed.", s.Location(key))).
			Wrap(err)
	}
	return nil
}

// Location returns the s3:// URL for key.
func (s *S3Sink) Location(key string) string {
	return "s3://" + path.Join(s.bucket, s.prefix, strings.TrimPrefix(key, "/"))
}

// S3Options configures the S3 client built by NewS3Client.
type S3Options struct {
	// Region is the bucket region. Defaults to AWS_REGION.
	Region string

	// Endpoint overrides the S3 endpoint, e.g. for S3-compatible stores.
	Endpoint string

	// UsePathStyle addresses buckets by path instead of subdomain.
	UsePathStyle bool
}

// NewS3Client builds an S3 client. Credentials are read from the standard
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables.
func NewS3Client(opts S3Options) (*s3.Client, error) {
	region := opts.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		return nil, errors.New("E062").
			WithDetail("No S3 region configured.").
			WithSuggestion("Set build.s3.region or AWS_REGION")
	}

	o := s3.Options{
		Region:       region,
		Credentials:  aws.NewCredentialsCache(envCredentials{}),
		UsePathStyle: opts.UsePathStyle,
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return s3.New(o), nil
}

type envCredentials struct{}

func (envCredentials) Retrieve(context.Context) (aws.Credentials, error) {
	id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("publish: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}
