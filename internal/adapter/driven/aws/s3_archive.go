package aws

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/pd-payroll-go/internal/domain/repository"
)

// S3Uploader é o subconjunto do cliente S3 usado pelo arquivamento.
type S3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ArchiveImpl implementa o ArchiveRepository enviando relatórios para o S3, com cache de clientes.
type S3ArchiveImpl struct {
	clientCache map[string]S3Uploader
	newClient   func(ctx context.Context, profile string) (S3Uploader, error)
	mu          sync.Mutex
}

// NewS3Archive cria uma nova implementação do ArchiveRepository.
func NewS3Archive() repository.ArchiveRepository {
	return &S3ArchiveImpl{
		clientCache: make(map[string]S3Uploader),
		newClient:   newS3Client,
	}
}

func newS3Client(ctx context.Context, profile string) (S3Uploader, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	return s3.NewFromConfig(cfg), nil
}

func (r *S3ArchiveImpl) client(ctx context.Context, profile string) (S3Uploader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clientCache[profile]; ok {
		return c, nil
	}

	c, err := r.newClient(ctx, profile)
	if err != nil {
		return nil, err
	}

	r.clientCache[profile] = c
	return c, nil
}

// Upload envia filePath para s3://bucket/prefix/<nome do arquivo> e retorna a URI do objeto.
func (r *S3ArchiveImpl) Upload(ctx context.Context, profile, bucket, prefix, filePath string) (string, error) {
	client, err := r.client(ctx, profile)
	if err != nil {
		return "", err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error opening report file: %w", err)
	}
	defer file.Close()

	key := ObjectKey(prefix, filePath)
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if ct := mime.TypeByExtension(filepath.Ext(filePath)); ct != "" {
		input.ContentType = aws.String(ct)
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("error uploading %s to bucket %s: %w", filepath.Base(filePath), bucket, err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}

// ObjectKey junta o prefixo e o nome base do arquivo numa chave S3.
func ObjectKey(prefix, filePath string) string {
	prefix = strings.Trim(prefix, "/")
	name := filepath.Base(filePath)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
