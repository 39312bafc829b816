// internal/services/catalog_source.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/javajoker/shopsmart-backend/internal/config"
	"github.com/javajoker/shopsmart-backend/internal/models"
)

// CatalogSource fetches the full product catalog.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]models.Product, error)
	Describe() string
}

// NewCatalogSource picks a source from the location scheme: s3://bucket/key,
// http(s)://..., file://... or a plain path.
func NewCatalogSource(cfg *config.Config) (CatalogSource, error) {
	location := cfg.Catalog.Source

	switch {
	case strings.HasPrefix(location, "s3://"):
		return NewS3Source(cfg.AWS, location)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, time.Duration(cfg.Catalog.LoadTimeout)*time.Second), nil
	case strings.HasPrefix(location, "file://"):
		return NewFileSource(strings.TrimPrefix(location, "file://")), nil
	default:
		return NewFileSource(location), nil
	}
}

type catalogDocument struct {
	Products []models.Product `json:"products"`
}

// DecodeCatalog accepts either {"products": [...]} or a bare array of products.
func DecodeCatalog(r io.Reader) ([]models.Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	var products []models.Product
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	} else {
		var doc catalogDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
		products = doc.Products
	}

	seen := make(map[int]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %d in catalog", p.ID)
		}
		seen[p.ID] = true
	}

	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Describe() string {
	return "file:" + s.path
}

func (s *FileSource) Fetch(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return DecodeCatalog(f)
}

type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(rawURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    rawURL,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Describe() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch catalog: unexpected status %d", resp.StatusCode)
	}

	return DecodeCatalog(resp.Body)
}

type S3Source struct {
	client s3iface.S3API
	bucket string
	key    string
}

func NewS3Source(cfg config.AWSConfig, location string) (*S3Source, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	// Create AWS session
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewS3SourceWithClient(s3.New(sess), bucket, key), nil
}

func NewS3SourceWithClient(client s3iface.S3API, bucket, key string) *S3Source {
	return &S3Source{client: client, bucket: bucket, key: key}
}

func (s *S3Source) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

func (s *S3Source) Fetch(ctx context.Context) ([]models.Product, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object %s: %w", s.Describe(), err)
	}
	defer out.Body.Close()

	return DecodeCatalog(out.Body)
}

func parseS3Location(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 location %q: %w", location, err)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q: expected s3://bucket/key", location)
	}
	return u.Host, key, nil
}
