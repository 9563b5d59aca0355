package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofiber/fiber/v2/log"
	"io"
	"path"
)

type (
	S3Config struct {
		Bucket    string
		Region    string
		AccessKey string
		SecretKey string
		// Endpoint overrides the AWS endpoint, e.g. a MinIO url.
		Endpoint string
		Prefix   string
	}

	AwsS3 struct {
		client *s3.Client
		bucket string
		prefix string
	}
)

func NewAwsS3(ctx context.Context, cfg S3Config) (*AwsS3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &AwsS3{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *AwsS3) key(dir, name string) string {
	return path.Join(s.prefix, dir, name)
}

func (s *AwsS3) Save(ctx context.Context, dir, name string, src io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(dir, name)),
		Body:   src,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", name, err)
	}
	return nil
}

func (s *AwsS3) Open(ctx context.Context, dir, name string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(dir, name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", name, err)
	}
	return &Object{Body: out.Body, Size: aws.ToInt64(out.ContentLength)}, nil
}

func (s *AwsS3) Exists(ctx context.Context, dir, name string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(dir, name)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("head object %s: %w", name, err)
	}
	return true, nil
}

func (s *AwsS3) Delete(ctx context.Context, dir, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(dir, name)),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", name, err)
	}
	return nil
}

// DeleteDir removes every object under the dir prefix, one batch per listed
// page. S3 has no folders, so there is nothing left to remove afterwards.
func (s *AwsS3) DeleteDir(ctx context.Context, dir string) error {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(path.Join(s.prefix, dir) + "/"),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("list objects %s: %w", dir, err)
		}
		if len(page.Contents) == 0 {
			continue
		}

		ids := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
		}

		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		})
		if err != nil {
			log.Warnw("delete photos", "dir", dir, "error", err)
			continue
		}
		for _, e := range out.Errors {
			log.Warnw("delete photo", "key", aws.ToString(e.Key), "error", aws.ToString(e.Message))
		}
	}
	return nil
}
