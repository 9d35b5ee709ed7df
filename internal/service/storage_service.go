package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService keeps identity-document images in an S3-compatible bucket.
// Objects live under users/{userID}/documents/{docID}/{side}.
type StorageService struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewStorageServiceFromEnv wires the object store from S3_* variables.
// Returns (nil, nil) when no endpoint is configured; document uploads are
// then rejected at the handler instead of at startup.
func NewStorageServiceFromEnv() (*StorageService, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	if endpoint == "" {
		log.Println("WARNING: S3_ENDPOINT not set, document image uploads disabled")
		return nil, nil
	}
	useSSL := os.Getenv("S3_USE_SSL") != "false"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object storage: %w", err)
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "rentacar-documents"
	}

	scheme := "https"
	if !useSSL {
		scheme = "http"
	}
	publicURL := os.Getenv("S3_PUBLIC_URL")
	if publicURL == "" {
		publicURL = fmt.Sprintf("%s://%s", scheme, endpoint)
	}

	return &StorageService{client: client, bucket: bucket, publicURL: publicURL}, nil
}

// UploadDocumentImage stores one side of a document and returns its public
// URL.
func (s *StorageService) UploadDocumentImage(ctx context.Context, userID int, docID, side string, r io.Reader, size int64, contentType string) (string, error) {
	key := fmt.Sprintf("users/%d/documents/%s/%s", userID, docID, side)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s image: %w", side, err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

// RemoveDocumentImages deletes both sides; missing objects are not an error.
func (s *StorageService) RemoveDocumentImages(ctx context.Context, userID int, docID string) {
	for _, side := range []string{"front", "back"} {
		key := fmt.Sprintf("users/%d/documents/%s/%s", userID, docID, side)
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			log.Printf("Failed to remove object %s: %v", key, err)
		}
	}
}
