package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"rideready-api/config"
)

// StorageService wraps the MinIO bucket holding uploaded compliance
// documents.
type StorageService struct {
	client *minio.Client
	logger *zap.Logger
	bucket string
}

func NewStorageService(cfg *config.Config, logger *zap.Logger) (*StorageService, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("error checking if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("error creating bucket: %w", err)
		}
		logger.Info("Bucket created", zap.String("bucket", cfg.MinioBucket))
	}

	logger.Info("MinIO client initialized", zap.String("endpoint", cfg.MinioEndpoint))

	return &StorageService{client: client, logger: logger, bucket: cfg.MinioBucket}, nil
}

// ObjectKey builds the storage key for an uploaded file:
// {user_id}/{ride_id|"global"}/{timestamp}-{filename}.
func ObjectKey(userID string, rideID *string, filename string, now time.Time) string {
	scope := "global"
	if rideID != nil && *rideID != "" {
		scope = *rideID
	}
	return fmt.Sprintf("%s/%s/%d-%s", userID, scope, now.Unix(), filename)
}

func (s *StorageService) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Error("Failed to upload object", zap.String("key", key), zap.Error(err))
		return err
	}

	s.logger.Info("Object uploaded", zap.String("key", key), zap.Int64("size", size))
	return nil
}

// PresignedURL returns a time-limited download link for an object.
func (s *StorageService) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	reqParams := make(url.Values)
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, reqParams)
	if err != nil {
		s.logger.Error("Failed to presign object", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return presigned.String(), nil
}

func (s *StorageService) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Error("Failed to delete object", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
