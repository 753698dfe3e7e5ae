// Package storage hosts uploaded images in an S3 compatible bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	config "github.com/lexluc/lexluc-platform/configs"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

// ObjectAPI is the subset of *s3.Client the store uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3ImageStore implements ports.ImageStore.
type S3ImageStore struct {
	client  ObjectAPI
	bucket  string
	baseURL string
	logger  *logrus.Logger
}

// NewS3Client builds a client from static keys when given, otherwise from
// the default AWS credential chain.
func NewS3Client(ctx context.Context, cfg *config.StorageConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// Custom endpoint for MinIO or other S3-compatible services
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle || cfg.Endpoint != ""
	}), nil
}

func NewS3ImageStore(client ObjectAPI, cfg *config.StorageConfig, logger *logrus.Logger) *S3ImageStore {
	return &S3ImageStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		logger:  logger,
	}
}

// publicBaseURL is where objects are served from, without a trailing slash.
func publicBaseURL(cfg *config.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

// URL returns the public address of an object.
func (s *S3ImageStore) URL(publicID string) string {
	parts := strings.Split(publicID, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.baseURL + "/" + strings.Join(parts, "/")
}

func (s *S3ImageStore) Put(ctx context.Context, publicID, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(publicID),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return s.URL(publicID), nil
}

func (s *S3ImageStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		s.logger.WithField("public_id", publicID).WithError(err).Error("storage: failed to delete image")
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// Ping verifies the bucket is reachable with the configured credentials.
func (s *S3ImageStore) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("bucket %s is not accessible: %w", s.bucket, err)
	}
	return nil
}

var _ ports.ImageStore = (*S3ImageStore)(nil)
