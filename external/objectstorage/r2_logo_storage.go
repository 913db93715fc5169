package objectstorage

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	crerr "github.com/cockroachdb/errors"
	"github.com/ksliga/league-api/internal/platform/logging"
	"github.com/ksliga/league-api/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var errStorageTransient = crerr.New("object storage transient failure")

const logoCacheControl = "public, max-age=31536000, immutable"

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
	Timeout         time.Duration
	CircuitBreaker  resilience.CircuitBreakerConfig
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// R2LogoStorage uploads team logos to a Cloudflare R2 bucket through its S3
// compatible API.
type R2LogoStorage struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
	timeout       time.Duration
	logger        *logging.Logger
	breaker       *resilience.CircuitBreaker
}

func NewR2LogoStorage(ctx context.Context, cfg R2Config, logger *logging.Logger) (*R2LogoStorage, error) {
	if strings.TrimSpace(cfg.AccountID) == "" ||
		strings.TrimSpace(cfg.AccessKeyID) == "" ||
		strings.TrimSpace(cfg.SecretAccessKey) == "" ||
		strings.TrimSpace(cfg.Bucket) == "" ||
		strings.TrimSpace(cfg.PublicBaseURL) == "" {
		return nil, crerr.New("r2 account id, access key, secret key, bucket and public base url are required")
	}

	sdkCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "load aws sdk config for r2")
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", strings.TrimSpace(cfg.AccountID))
	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return newR2LogoStorage(client, cfg, logger), nil
}

func newR2LogoStorage(client objectPutter, cfg R2Config, logger *logging.Logger) *R2LogoStorage {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &R2LogoStorage{
		client:        client,
		bucket:        strings.TrimSpace(cfg.Bucket),
		publicBaseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		timeout:       timeout,
		logger:        logger,
		breaker:       resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

// Upload stores body under key and returns its public URL.
func (s *R2LogoStorage) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", crerr.New("object key is required")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("r2.bucket", s.bucket),
			attribute.String("r2.key", key),
			attribute.Int("r2.size", len(body)),
		)
	}

	put := func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		_, err := s.client.PutObject(callCtx, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(body),
			ContentType:   aws.String(contentType),
			ContentLength: aws.Int64(int64(len(body))),
			CacheControl:  aws.String(logoCacheControl),
		})
		if err != nil {
			if isTransientStorageError(err) {
				return fmt.Errorf("%w: put object key=%s: %v", errStorageTransient, key, err)
			}
			return crerr.Wrapf(err, "put object key=%s", key)
		}
		return nil
	}

	err := s.breaker.Do(put, func(err error) bool { return stderrors.Is(err, errStorageTransient) })
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		s.logger.WarnContext(ctx, "r2 circuit breaker rejected upload", "state", s.breaker.State(), "key", key)
		return "", fmt.Errorf("logo storage is temporarily unavailable: %w", err)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "r2 upload failed", "key", key, "error", err)
		return "", err
	}

	url := s.PublicURL(key)
	s.logger.InfoContext(ctx, "r2 object uploaded", "key", key, "size", len(body), "url", url)
	return url, nil
}

func (s *R2LogoStorage) PublicURL(key string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(s.publicBaseURL)
	_ = buf.WriteByte('/')
	_, _ = buf.WriteString(strings.TrimLeft(key, "/"))
	return buf.String()
}

func isTransientStorageError(err error) bool {
	if err == nil {
		return false
	}
	var respErr *awshttp.ResponseError
	if stderrors.As(err, &respErr) {
		status := respErr.HTTPStatusCode()
		return status == http.StatusTooManyRequests || status == http.StatusRequestTimeout || status >= http.StatusInternalServerError
	}
	return true
}
