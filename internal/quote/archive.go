package quote

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archiver keeps a copy of every generated quote in object storage.
// Archiving is best-effort: a nil Archiver (no bucket configured) and any
// upload failure leave quote generation unaffected.
type Archiver struct {
	client *s3.Client
	bucket string
}

type ArchiveConfig struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKeyID  string
	SecretKey    string
}

func NewArchiver(ctx context.Context, cfg ArchiveConfig) (*Archiver, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &Archiver{client: client, bucket: cfg.Bucket}, nil
}

// Put stores a rendered quote under quotes/<repair-id>/<file name>.
func (a *Archiver) Put(ctx context.Context, repairID, fileName string, pdf []byte) error {
	if a == nil {
		return nil
	}
	key := fmt.Sprintf("quotes/%s/%s", repairID, fileName)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("archive quote %s: %w", key, err)
	}
	return nil
}
