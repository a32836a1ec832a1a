package publish

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the slice of the S3 client the store needs. *s3.Client
// satisfies it; tests substitute a fake.
type S3API interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store publishes objects to an S3 bucket under an optional prefix.
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// S3Config configures the S3 client for publishing.
type S3Config struct {
	Bucket string
	Region string
	Prefix string

	// Endpoint overrides the AWS endpoint for S3-compatible stores
	// (MinIO, R2). Path-style addressing is used when set.
	Endpoint string

	// AccessKey and SecretKey are static credentials. When AccessKey is
	// empty the SDK's default provider chain applies.
	AccessKey string
	SecretKey string
}

// NewS3Store creates a store over an existing client.
func NewS3Store(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(prefix),
	}
}

// NewS3StoreFromConfig builds the client from static configuration.
func NewS3StoreFromConfig(cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("publish: s3 bucket is required")
	}

	options := s3.Options{
		Region: cfg.Region,
	}
	if options.Region == "" {
		options.Region = "us-east-1"
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
		options.UsePathStyle = true
	}
	if cfg.AccessKey != "" {
		access, secret := cfg.AccessKey, cfg.SecretKey
		options.Credentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     access,
				SecretAccessKey: secret,
				Source:          "tagtree site config",
			}, nil
		})
	}

	return NewS3Store(s3.New(options), cfg.Bucket, cfg.Prefix), nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) List(ctx context.Context) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			keys = append(keys, strings.TrimPrefix(*obj.Key, s.prefix))
		}
	}
	return keys, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}
