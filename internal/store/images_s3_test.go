package store

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-book-share/internal/config"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/utils"
)

type fakeS3 struct {
	putInput    *s3.PutObjectInput
	putBody     []byte
	deleteInput *s3.DeleteObjectInput
	err         error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.putInput = in
	f.putBody, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleteInput = in
	return &s3.DeleteObjectOutput{}, nil
}

func newTestS3Storage(client s3ObjectAPI) *s3ImageStorage {
	return &s3ImageStorage{
		client:    client,
		bucket:    "covers",
		publicURL: "https://cdn.example.com/covers",
		keys:      utils.NewUUIDGenerator(),
		logger:    logger.Nop(),
	}
}

func pngDataURI(payload []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestS3ImageStorage_UploadDataURI(t *testing.T) {
	client := &fakeS3{}
	storage := newTestS3Storage(client)

	url, err := storage.Upload(context.Background(), pngDataURI([]byte("png-bytes")))

	require.NoError(t, err)
	require.NotNil(t, client.putInput)
	assert.Equal(t, "covers", aws.ToString(client.putInput.Bucket))
	assert.Equal(t, "image/png", aws.ToString(client.putInput.ContentType))
	assert.Equal(t, int64(len("png-bytes")), aws.ToInt64(client.putInput.ContentLength))
	assert.Equal(t, []byte("png-bytes"), client.putBody)

	key := aws.ToString(client.putInput.Key)
	assert.True(t, strings.HasPrefix(key, imageKeyPrefix))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "https://cdn.example.com/covers/"+key, url)
}

func TestS3ImageStorage_UploadHTTPURLPassesThrough(t *testing.T) {
	client := &fakeS3{}
	storage := newTestS3Storage(client)

	url, err := storage.Upload(context.Background(), "https://images.example.com/dune.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/dune.jpg", url)
	assert.Nil(t, client.putInput)
}

func TestS3ImageStorage_UploadErrors(t *testing.T) {
	tests := []struct {
		name    string
		image   string
		client  *fakeS3
		wantErr error
	}{
		{name: "not an image", image: "hello", client: &fakeS3{}, wantErr: ErrInvalidImage},
		{name: "unsupported type", image: "data:text/plain;base64,aGk=", client: &fakeS3{}, wantErr: ErrInvalidImage},
		{name: "broken base64", image: "data:image/png;base64,***", client: &fakeS3{}, wantErr: ErrInvalidImage},
		{name: "put fails", image: pngDataURI([]byte("x")), client: &fakeS3{err: errors.New("access denied")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestS3Storage(tt.client).Upload(context.Background(), tt.image)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestS3ImageStorage_Delete(t *testing.T) {
	t.Run("own object", func(t *testing.T) {
		client := &fakeS3{}
		storage := newTestS3Storage(client)

		require.NoError(t, storage.Delete(context.Background(), "https://cdn.example.com/covers/books/abc.png"))
		require.NotNil(t, client.deleteInput)
		assert.Equal(t, "books/abc.png", aws.ToString(client.deleteInput.Key))
		assert.Equal(t, "covers", aws.ToString(client.deleteInput.Bucket))
	})

	t.Run("foreign url is ignored", func(t *testing.T) {
		client := &fakeS3{}
		storage := newTestS3Storage(client)

		require.NoError(t, storage.Delete(context.Background(), "https://images.example.com/dune.jpg"))
		assert.Nil(t, client.deleteInput)
	})

	t.Run("delete fails", func(t *testing.T) {
		storage := newTestS3Storage(&fakeS3{err: errors.New("timeout")})

		err := storage.Delete(context.Background(), "https://cdn.example.com/covers/books/abc.png")
		assert.Error(t, err)
	})
}

func TestURLImageStorage(t *testing.T) {
	storage := &urlImageStorage{}
	ctx := context.Background()

	url, err := storage.Upload(ctx, "http://example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a.png", url)

	_, err = storage.Upload(ctx, pngDataURI([]byte("x")))
	assert.ErrorIs(t, err, ErrImageUploadDisabled)

	_, err = storage.Upload(ctx, "ftp://example.com/a.png")
	assert.ErrorIs(t, err, ErrInvalidImage)

	assert.NoError(t, storage.Delete(ctx, "http://example.com/a.png"))
}

func TestNewImageStorage(t *testing.T) {
	t.Run("without bucket", func(t *testing.T) {
		storage, err := NewImageStorage(context.Background(), config.Images{}, logger.Nop())

		require.NoError(t, err)
		assert.IsType(t, &urlImageStorage{}, storage)
	})

	t.Run("with bucket and custom endpoint", func(t *testing.T) {
		origNewClient := newS3ClientFromConfig
		t.Cleanup(func() { newS3ClientFromConfig = origNewClient })

		var opts s3.Options
		newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3ObjectAPI {
			for _, fn := range optFns {
				fn(&opts)
			}
			return &fakeS3{}
		}

		storage, err := NewImageStorage(context.Background(), config.Images{
			Endpoint:  "http://localhost:9000",
			Region:    "us-east-1",
			Bucket:    "covers",
			AccessKey: "minio",
			SecretKey: "minio123",
			PublicURL: "http://localhost:9000/covers/",
		}, logger.Nop())

		require.NoError(t, err)
		s3Storage, ok := storage.(*s3ImageStorage)
		require.True(t, ok)
		assert.Equal(t, "http://localhost:9000/covers", s3Storage.publicURL)
		assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
		assert.True(t, opts.UsePathStyle)
	})

	t.Run("aws config error", func(t *testing.T) {
		origLoad := loadDefaultAWSConfig
		t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

		loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("bad profile")
		}

		_, err := NewImageStorage(context.Background(), config.Images{Bucket: "covers"}, logger.Nop())
		assert.Error(t, err)
	})
}
