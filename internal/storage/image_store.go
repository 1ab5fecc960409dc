package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"salon-backend/internal/config"
)

// ImageStore uploads product photos to an S3-compatible bucket (R2, MinIO,
// plain S3). The rest of the system only ever sees the resulting public URL.
type ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewImageStore builds the client from static credentials. Call only when
// storage is configured; the product API works without images.
func NewImageStore(ctx context.Context, cfg *config.Config) (*ImageStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("configure storage client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
	})

	return &ImageStore{
		client:  client,
		bucket:  cfg.Storage.Bucket,
		baseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// UploadProductImage stores the image under products/<productID>/<filename>
// and returns its public URL.
func (s *ImageStore) UploadProductImage(ctx context.Context, productID, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("products/%s/%s", productID, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

// DeleteProductImage removes a previously uploaded image. Missing keys are
// not an error.
func (s *ImageStore) DeleteProductImage(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
