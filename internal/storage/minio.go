package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// Config holds the connection settings for the MinIO object store.
type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

// minioStorage implements domain.ObjectStorage backed by a MinIO bucket.
type minioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinIO creates an ObjectStorage backed by the configured MinIO endpoint.
func NewMinIO(cfg Config) (domain.ObjectStorage, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("storage endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	publicBaseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBaseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBaseURL = scheme + "://" + cfg.Endpoint
	}

	return &minioStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

// Upload stores the object under a collision-resistant key and returns its
// public URL. The original filename is slugified for the key; the timestamp
// prefix keeps repeated uploads of the same file distinct.
func (s *minioStorage) Upload(ctx context.Context, in domain.UploadInput) (string, error) {
	objectKey := buildObjectKey(in.Folder, in.Filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, in.Body, in.Size, minio.PutObjectOptions{
		ContentType: in.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload object %q: %w", objectKey, err)
	}

	return s.publicBaseURL + "/" + s.bucket + "/" + objectKey, nil
}

// buildObjectKey produces "<folder>/<unix-nano>-<slugified-name><ext>".
func buildObjectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := pkg.GenerateSlug(strings.TrimSuffix(filename, path.Ext(filename)))
	if base == "" {
		base = "file"
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), base, ext)
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
