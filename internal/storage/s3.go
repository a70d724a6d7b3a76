package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-marketplace/internal/config"
)

// Uploader stores an object and returns the reference kept on the user row.
type Uploader interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client  objectPutter
	bucket  string
	baseURL string
}

// NewS3Uploader returns nil when the bucket is not configured.
func NewS3Uploader(cfg config.S3Config) *S3Uploader {
	if !cfg.Enabled() {
		return nil
	}

	awsCfg := aws.Config{Region: cfg.Region}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

func (u *S3Uploader) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	if u.baseURL == "" {
		return key, nil
	}
	return u.baseURL + "/" + key, nil
}

// AvatarKey is a fresh object key per upload so caches never serve a stale image.
func AvatarKey(userID uint) string {
	return fmt.Sprintf("avatars/%d/%s.webp", userID, uuid.NewString())
}
