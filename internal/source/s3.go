package source

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
)

const defaultS3Region = "us-east-1"

// S3Config addresses one object. Credentials come from the default AWS chain.
type S3Config struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string // optional, for S3-compatible stores such as MinIO
	PathStyle bool
}

// S3 reads a CSV or workbook object from a bucket.
type S3 struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3 builds a client from cfg.
func NewS3(ctx context.Context, cfg S3Config, optFns ...func(*s3.Options)) (*S3, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("s3 source needs a bucket and key")
	}
	region := cfg.Region
	if region == "" {
		region = defaultS3Region
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		for _, fn := range optFns {
			fn(o)
		}
	})
	return &S3{client: client, bucket: cfg.Bucket, key: cfg.Key}, nil
}

func (s *S3) Name() string { return "s3://" + s.bucket + "/" + s.key }

// Load downloads the object and decodes it by key extension.
func (s *S3) Load(ctx context.Context) (*importer.RawTable, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key})
	if err != nil {
		return nil, dataError(s.Name(), fmt.Errorf("get object: %w", err))
	}
	defer out.Body.Close()

	data, err := readBody(out.Body)
	if err != nil {
		return nil, dataError(s.Name(), fmt.Errorf("read object: %w", err))
	}
	grid, err := Decode(s.key, data)
	if err != nil {
		return nil, dataError(s.Name(), err)
	}
	return importer.NewRawTable(s.Name(), grid), nil
}
