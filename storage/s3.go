package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ArtifactUploader ships report artifacts to S3 so failed runs leave
// evidence outside the CI workspace.
type ArtifactUploader struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewArtifactUploader initializes the S3 client for the given region
// and bucket.
func NewArtifactUploader(ctx context.Context, region, bucket string) (*ArtifactUploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &ArtifactUploader{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

// UploadArtifact uploads the file at path under the given run prefix
// and returns the object key.
func (u *ArtifactUploader) UploadArtifact(ctx context.Context, runID, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open artifact %q: %w", path, err)
	}
	defer f.Close()

	key := fmt.Sprintf("runs/%s/%s", runID, filepath.Base(path))
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload artifact to S3: %v", err)
	}

	return key, nil
}

// PresignedURL generates a shareable link for an uploaded artifact.
func (u *ArtifactUploader) PresignedURL(ctx context.Context, key string) (string, error) {
	request, err := u.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(24*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %v", err)
	}
	return request.URL, nil
}
