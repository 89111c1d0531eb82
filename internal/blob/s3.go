package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/NovaCutsHQ/barber-dashboard/internal/config"
)

// Uploader pushes catalog images to the media bucket and hands back the
// public URL the dashboard stores on the service/style record.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	creds := credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")

	client := s3.New(s3.Options{
		Region:      cfg.S3Region,
		Credentials: creds,
		BaseEndpoint: func() *string {
			if cfg.S3Endpoint == "" {
				return nil
			}
			return aws.String(cfg.S3Endpoint)
		}(),
	})

	baseURL := cfg.S3PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (u *Uploader) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return u.baseURL + "/" + key, nil
}
