// Package s3 stores listing photos in an S3-compatible object store.
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type PhotoStorage struct {
	client     *minio.Client
	bucket     string
	publicHost string
	logger     *zap.Logger
}

type Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PublicHost string
}

// NewPhotoStorage connects to the object store and makes sure the
// bucket exists.
func NewPhotoStorage(ctx context.Context, cfg Config, logger *zap.Logger) (*PhotoStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("s3: failed to create client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("s3: failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("s3: failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("created photo bucket", zap.String("bucket", cfg.Bucket))
	}

	publicHost := cfg.PublicHost
	if publicHost == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicHost = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}
	return &PhotoStorage{
		client:     client,
		bucket:     cfg.Bucket,
		publicHost: strings.TrimRight(publicHost, "/"),
		logger:     logger,
	}, nil
}

// Upload stores the photo under a random key, keeping the original
// extension, and returns its public URL.
func (s *PhotoStorage) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("photos/%s%s", uuid.New().String(), filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("s3: failed to upload %s: %w", objectName, err)
	}

	s.logger.Debug("photo stored",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
		zap.Int64("size", size))
	return fmt.Sprintf("%s/%s/%s", s.publicHost, s.bucket, objectName), nil
}

// Remove deletes the object a public URL points at. URLs from other
// hosts are ignored.
func (s *PhotoStorage) Remove(ctx context.Context, objectURL string) error {
	parsed, err := url.Parse(objectURL)
	if err != nil {
		return fmt.Errorf("s3: invalid object url %q: %w", objectURL, err)
	}
	prefix := "/" + s.bucket + "/"
	if !strings.HasPrefix(parsed.Path, prefix) {
		return nil
	}
	objectName := strings.TrimPrefix(parsed.Path, prefix)

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("s3: failed to remove %s: %w", objectName, err)
	}
	return nil
}
