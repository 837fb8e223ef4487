package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Store uploads profile images to S3-compatible storage and hands back the
// durable public URL the profile record stores as an opaque string.
type Store interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// S3Config holds configuration for S3-compatible storage. PublicBaseURL is
// the CDN or bucket base URL the uploaded object is served from; when empty
// the standard S3 URL form is used.
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Endpoint        string // custom endpoint for S3-compatible providers
	PublicBaseURL   string
}

type s3Store struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3Store creates a media store backed by S3 (or an S3-compatible
// provider when cfg.Endpoint is set).
func NewS3Store(ctx context.Context, cfg S3Config) (Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String("https://" + cfg.Endpoint)
			o.UsePathStyle = true // compatible providers require path-style
		}
	})

	return &s3Store{client: client, cfg: cfg}, nil
}

// Upload stores the object under a generated key and returns its public URL.
// The original filename only contributes its extension; keys are uuids so
// uploads never collide or overwrite.
func (s *s3Store) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := "profile-images/" + uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	if s.cfg.PublicBaseURL != "" {
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key, nil
	}
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("https://%s/%s/%s", s.cfg.Endpoint, s.cfg.Bucket, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key), nil
}
