// Where: internal/deploylog/archive.go
// What: S3 archive for deployment log artifacts.
// Why: Keep a shared copy of per-machine logs for later inspection.
package deploylog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 API the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver uploads log artifacts to an S3 bucket. Uploads are plain
// puts, so re-pushing the same directory is idempotent.
type Archiver struct {
	Client ObjectPutter
	Bucket string
	Prefix string
}

// Push uploads every artifact in dir and returns the object keys written.
func (a Archiver) Push(ctx context.Context, dir string) ([]string, error) {
	if a.Client == nil {
		return nil, fmt.Errorf("archive client is nil")
	}
	if a.Bucket == "" {
		return nil, fmt.Errorf("archive bucket is required")
	}

	names, err := List(dir, "")
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return keys, err
		}
		key := a.Prefix + name
		_, err = a.Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(a.Bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(content),
		})
		if err != nil {
			return keys, fmt.Errorf("upload %s: %w", key, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// NewS3Client builds an S3 client from the default credential chain.
// A non-empty endpoint switches to path-style addressing with static
// credentials from ARCHIVE_ACCESS_KEY / ARCHIVE_SECRET_KEY, which is
// what local object stores such as MinIO expect.
func NewS3Client(ctx context.Context, endpoint string) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if endpoint != "" {
		creds := credentials.NewStaticCredentialsProvider(
			os.Getenv("ARCHIVE_ACCESS_KEY"),
			os.Getenv("ARCHIVE_SECRET_KEY"),
			"",
		)
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	})
	return client, nil
}
