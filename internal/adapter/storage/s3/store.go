// Package s3 stores uploaded files in an S3-compatible bucket (AWS, MinIO).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/storage"
	"github.com/heartmarshall/entomoguide-backend/internal/config"
)

// Client is the subset of *s3.Client the store uses.
type Client interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	s3.ListObjectsV2APIClient
}

// Store keeps objects in one bucket, keyed by object name.
type Store struct {
	client Client
	bucket string
	now    func() time.Time
}

// New builds an S3 client from cfg and returns a Store for cfg.S3Bucket.
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3PathStyle
	})

	return NewWithClient(client, cfg.S3Bucket), nil
}

// NewWithClient returns a Store using an existing client.
func NewWithClient(client Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket, now: time.Now}
}

// Put uploads r under a fresh name. The body is buffered so the request is
// seekable and can be replayed when a name is already taken.
func (s *Store) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext, err := storage.Ext(filename)
	if err != nil {
		return "", err
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	now := s.now()
	for n := range storage.MaxNameAttempts {
		name := storage.ObjectName(now, n, ext)

		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(name),
			Body:          bytes.NewReader(body),
			ContentLength: aws.Int64(int64(len(body))),
			ContentType:   aws.String(storage.ContentType(ext)),
			IfNoneMatch:   aws.String("*"),
		})
		if isPreconditionFailed(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("put object %s: %w", name, err)
		}

		return storage.Locator(name), nil
	}

	return "", fmt.Errorf("no free object name after %d attempts", storage.MaxNameAttempts)
}

// Delete removes the object behind locator. S3 deletes are idempotent.
func (s *Store) Delete(ctx context.Context, locator string) error {
	name, err := storage.NameFromLocator(locator)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", name, err)
	}
	return nil
}

// List returns the locators of all objects in the bucket, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var locators []string

	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		for _, obj := range page.Contents {
			locators = append(locators, storage.Locator(aws.ToString(obj.Key)))
		}
	}

	sort.Strings(locators)
	return locators, nil
}

// Handler streams objects from the bucket under storage.PublicPrefix.
func (s *Store) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, err := storage.NameFromLocator(r.URL.Path)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		out, err := s.client.GetObject(r.Context(), &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(name),
		})
		if err != nil {
			var noKey *types.NoSuchKey
			if errors.As(err, &noKey) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "storage unavailable", http.StatusBadGateway)
			return
		}
		defer out.Body.Close()

		if out.ContentType != nil {
			w.Header().Set("Content-Type", *out.ContentType)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.Copy(w, out.Body)
	})
}

func isPreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed"
}
