package repositories

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/muchtrie/tugasdrop/internal/config"
)

// StoredObject is the object-store view of a stored file: key, size and
// the provider-assigned last-modified time. It carries no submitter
// metadata; that only lives in the uploads table.
type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStore wraps an S3 (or S3-compatible) bucket holding the raw
// submission bytes.
type ObjectStore struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// NewObjectStore builds an S3 client from static credentials. A non-empty
// EndpointURL switches to path-style addressing for S3-compatible stores.
func NewObjectStore(cfg appconfig.S3Config) *ObjectStore {
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true
		}
	})

	return &ObjectStore{
		client:   client,
		bucket:   cfg.BucketName,
		region:   cfg.Region,
		endpoint: strings.TrimSuffix(cfg.EndpointURL, "/"),
	}
}

// Put writes body under key and returns the public object location.
func (s *ObjectStore) Put(ctx context.Context, key string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return s.PublicURL(key), nil
}

// List enumerates every object in the bucket.
func (s *ObjectStore) List(ctx context.Context) ([]StoredObject, error) {
	var objects []StoredObject

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, StoredObject{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

// PublicURL constructs the deterministic public location for a key, so a
// listing rebuilt from the bucket alone can still link to the file.
func (s *ObjectStore) PublicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
