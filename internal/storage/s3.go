package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	s3Config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolhub/internal/config"
	"schoolhub/internal/model"
	"schoolhub/pkg/logging"
)

const submissionsPrefix = "submissions/"

// ObjectAPI is the part of the S3 client the storage uses.
type ObjectAPI interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

func NewClient(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	s3Cfg, err := s3Config.LoadDefaultConfig(ctx,
		s3Config.WithRegion(cfg.S3Region),
		s3Config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKeyID,
				cfg.S3SecretAccessKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(s3Cfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = true
	})
	return client, nil
}

// FileStorage keeps submission files in one bucket. Paths returned by Save are object keys.
type FileStorage struct {
	client ObjectAPI
	bucket string
}

// NewFileStorage creates the bucket when it does not exist yet.
func NewFileStorage(ctx context.Context, client ObjectAPI, bucket string) (*FileStorage, error) {
	s := &FileStorage{client: client, bucket: bucket}
	if err := s.createBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return s, nil
}

func (s *FileStorage) Save(ctx context.Context, file *model.File) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	key := submissionsPrefix + id.String() + strings.ToLower(filepath.Ext(file.Name))

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Content),
		ContentLength: aws.Int64(int64(len(file.Content))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Debug(ctx, "Stored file", zap.String("bucket", s.bucket), zap.String("key", key))
	}
	return key, nil
}

// Delete removes the object. A missing object is not an error.
func (s *FileStorage) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

func (s *FileStorage) createBucket(ctx context.Context) error {
	_, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusConflict {
			if logger, ok := logging.GetFromContext(ctx); ok {
				logger.Info(ctx, "Bucket already exists", zap.String("bucket", s.bucket))
			}
			return nil
		}
	}
	return err
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
