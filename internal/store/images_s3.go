package store

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-book-share/internal/config"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/utils"
	"github.com/MKhiriev/go-book-share/internal/validators"
)

const imageKeyPrefix = "books/"

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/heic": "heic",
}

// s3ObjectAPI is the subset of *s3.Client used by the image storage.
type s3ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3ObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// s3ImageStorage keeps book images in an S3-compatible bucket (AWS S3, MinIO).
type s3ImageStorage struct {
	client    s3ObjectAPI
	bucket    string
	publicURL string
	keys      *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewImageStorage returns the S3-backed storage when a bucket is configured,
// otherwise a storage that accepts only http(s) URLs.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	if cfg.Bucket == "" {
		log.Warn().Str("func", "NewImageStorage").Msg("no image bucket configured, uploads are disabled")
		return &urlImageStorage{}, nil
	}

	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewImageStorage").Msg("failed to load aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().
		Str("func", "NewImageStorage").
		Str("bucket", cfg.Bucket).
		Str("endpoint", cfg.Endpoint).
		Msg("image storage configured")

	return &s3ImageStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		keys:      utils.NewUUIDGenerator(),
		logger:    log,
	}, nil
}

// Upload decodes a base64 data URI and stores it under books/<uuid>.<ext>.
func (s *s3ImageStorage) Upload(ctx context.Context, image string) (string, error) {
	if validators.IsHTTPURL(image) {
		return image, nil
	}

	contentType, data, err := decodeDataURI(image)
	if err != nil {
		return "", err
	}

	key := imageKeyPrefix + s.keys.Generate() + "." + imageExtensions[contentType]

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "s3ImageStorage.Upload").
			Str("key", key).
			Msg("failed to put image")
		return "", fmt.Errorf("error uploading image: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

// Delete removes the object behind imageURL. Foreign URLs are ignored.
func (s *s3ImageStorage) Delete(ctx context.Context, imageURL string) error {
	key, ok := strings.CutPrefix(imageURL, s.publicURL+"/")
	if !ok || key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting image %q: %w", key, err)
	}

	return nil
}

// decodeDataURI splits "data:<mime>;base64,<payload>" and decodes the payload.
// Only image types listed in imageExtensions are accepted.
func decodeDataURI(image string) (string, []byte, error) {
	if !validators.IsDataURI(image) {
		return "", nil, ErrInvalidImage
	}

	meta, payload, _ := strings.Cut(strings.TrimPrefix(image, "data:"), ",")
	contentType := strings.ToLower(strings.TrimSuffix(meta, ";base64"))
	if _, ok := imageExtensions[contentType]; !ok {
		return "", nil, fmt.Errorf("%w: unsupported content type %q", ErrInvalidImage, contentType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	return contentType, data, nil
}

// urlImageStorage is used when no bucket is configured.
type urlImageStorage struct{}

func (u *urlImageStorage) Upload(_ context.Context, image string) (string, error) {
	if validators.IsHTTPURL(image) {
		return image, nil
	}
	if validators.IsDataURI(image) {
		return "", ErrImageUploadDisabled
	}
	return "", ErrInvalidImage
}

func (u *urlImageStorage) Delete(context.Context, string) error {
	return nil
}
