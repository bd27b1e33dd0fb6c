package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"techmend/internal/infrastructure/database"
	"techmend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3MediaStore keeps issue-evidence images in an S3 bucket.
//
// Env vars:
//   - MEDIA_BUCKET (default: techmend-media)
//   - MEDIA_PUBLIC_BASE_URL (optional; default derives the standard S3 URL)
type S3MediaStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IMediaStore = (*S3MediaStore)(nil)

func NewS3MediaStore(ctx context.Context) (*S3MediaStore, error) {
	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	bucket := os.Getenv("MEDIA_BUCKET")
	if bucket == "" {
		bucket = "techmend-media"
	}
	baseURL := strings.TrimRight(os.Getenv("MEDIA_PUBLIC_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}

	return &S3MediaStore{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *S3MediaStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		log.Printf("[media][store] put failed key=%s err=%v", key, err)
		return "", err
	}
	return s.baseURL + "/" + key, nil
}
