package s3

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"causematch-backend/internal/shared/storage/object"
	"causematch-backend/internal/shared/util"
)

// Proposal documents live under a fixed namespace inside the bucket.
const keyNamespace = "proposals"

// Store implements object.Store using Amazon S3.
type Store struct {
	client *s3.Client
	bucket string
	region string
	now    func() time.Time
}

// New creates a new S3-backed object store. An empty bucket or region yields
// an unconfigured store rather than an error so the surrounding workflow can
// continue without blob storage.
func New(ctx context.Context, region, bucket string) (*Store, error) {
	store := &Store{
		bucket: strings.TrimSpace(bucket),
		region: strings.TrimSpace(region),
		now:    time.Now,
	}
	if !store.Configured() {
		return store, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(store.region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	store.client = s3.NewFromConfig(cfg)
	return store, nil
}

// Configured reports whether all required connection parameters are present.
func (s *Store) Configured() bool {
	return s.bucket != "" && s.region != ""
}

// Upload writes the reader contents under a timestamped key and returns the
// key plus a retrievable URL.
func (s *Store) Upload(ctx context.Context, fileName string, contentType string, r io.Reader) (string, string, error) {
	if !s.Configured() || s.client == nil {
		return "", "", fmt.Errorf("s3 store not configured")
	}

	key, err := s.buildKey(fileName)
	if err != nil {
		return "", "", err
	}

	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", "", fmt.Errorf("s3 put object bucket=%s key=%s: %w", s.bucket, key, err)
	}

	return key, s.objectURL(key), nil
}

// Open downloads a stored object for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if !s.Configured() || s.client == nil {
		return nil, fmt.Errorf("s3 store not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get object bucket=%s key=%s: %w", s.bucket, key, err)
	}
	return out.Body, nil
}

func (s *Store) buildKey(fileName string) (string, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return fmt.Sprintf("%s/%d_%s", keyNamespace, s.now().UnixMilli(), sanitized), nil
}

func (s *Store) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

var _ object.Store = (*Store)(nil)
