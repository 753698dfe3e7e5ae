package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/lexluc/lexluc-platform/configs"
)

type fakeObjects struct {
	puts    map[string][]byte
	types   map[string]string
	deleted []string
	headErr error
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[aws.ToString(in.Key)] = b
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeObjects) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func newFake() *fakeObjects {
	return &fakeObjects{puts: map[string][]byte{}, types: map[string]string{}}
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", publicBaseURL(&config.StorageConfig{PublicBaseURL: "https://cdn.example.com/"}))
	assert.Equal(t, "http://minio:9000/media", publicBaseURL(&config.StorageConfig{Endpoint: "http://minio:9000", Bucket: "media"}))
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com", publicBaseURL(&config.StorageConfig{Bucket: "media", Region: "eu-west-1"}))
}

func TestPutStoresObjectAndReturnsURL(t *testing.T) {
	fake := newFake()
	store := NewS3ImageStore(fake, &config.StorageConfig{Bucket: "media", PublicBaseURL: "https://cdn.example.com"}, logrus.New())

	url, err := store.Put(context.Background(), "lexluc/tours/safari-1a2b3c4d", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/lexluc/tours/safari-1a2b3c4d", url)
	assert.Equal(t, []byte("png"), fake.puts["lexluc/tours/safari-1a2b3c4d"])
	assert.Equal(t, "image/png", fake.types["lexluc/tours/safari-1a2b3c4d"])

	require.NoError(t, store.Delete(context.Background(), "lexluc/tours/safari-1a2b3c4d"))
	assert.Equal(t, []string{"lexluc/tours/safari-1a2b3c4d"}, fake.deleted)
}

func TestPingReportsBucketErrors(t *testing.T) {
	fake := newFake()
	fake.headErr = errors.New("forbidden")
	store := NewS3ImageStore(fake, &config.StorageConfig{Bucket: "media"}, logrus.New())

	err := store.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket media is not accessible")
}
