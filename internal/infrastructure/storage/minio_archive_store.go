package storage

import (
	"bytes"
	"context"
	"fmt"
	"packslip/internal/config"
	"packslip/internal/usecase/interfaces"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const zipContentType = "application/zip"

// MinioArchiveStore keeps finished bulk archives in a MinIO bucket and hands
// back presigned download links.
type MinioArchiveStore struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

var _ interfaces.IArchiveStore = (*MinioArchiveStore)(nil)

func NewMinioArchiveStore(cfg config.ArchiveConfig, region string, expiry time.Duration) (*MinioArchiveStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &MinioArchiveStore{client: client, bucket: cfg.Bucket, expiry: expiry}, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (s *MinioArchiveStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Save uploads content under key and returns a presigned GET URL.
func (s *MinioArchiveStore) Save(ctx context.Context, key string, content []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: zipContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload archive: %w", err)
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}
