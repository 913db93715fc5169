package objectstorage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/ksliga/league-api/internal/platform/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	calls   int
	err     error
	lastKey string
	body    []byte
	ctype   string
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	f.lastKey = *in.Key
	f.ctype = *in.ContentType
	data, _ := io.ReadAll(in.Body)
	f.body = data
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func statusError(code int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: code}},
			Err:      errors.New("status"),
		},
	}
}

func TestR2LogoStorage_Upload(t *testing.T) {
	putter := &fakePutter{}
	store := newR2LogoStorage(putter, R2Config{
		Bucket:        "logos",
		PublicBaseURL: "https://cdn.example.com/",
	}, nil)

	url, err := store.Upload(context.Background(), "/teams/1/2-100.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/teams/1/2-100.png", url)
	assert.Equal(t, "teams/1/2-100.png", putter.lastKey)
	assert.Equal(t, "image/png", putter.ctype)
	assert.Equal(t, []byte("png"), putter.body)
}

func TestR2LogoStorage_UploadRequiresKey(t *testing.T) {
	putter := &fakePutter{}
	store := newR2LogoStorage(putter, R2Config{Bucket: "logos", PublicBaseURL: "https://cdn"}, nil)

	_, err := store.Upload(context.Background(), "  ", "image/png", []byte("png"))
	require.Error(t, err)
	assert.Zero(t, putter.calls)
}

func TestR2LogoStorage_CircuitOpensOnTransientFailures(t *testing.T) {
	putter := &fakePutter{err: statusError(http.StatusServiceUnavailable)}
	store := newR2LogoStorage(putter, R2Config{
		Bucket:        "logos",
		PublicBaseURL: "https://cdn",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, nil)

	for i := 0; i < 2; i++ {
		_, err := store.Upload(context.Background(), "k.png", "image/png", []byte("x"))
		require.ErrorIs(t, err, errStorageTransient)
	}

	_, err := store.Upload(context.Background(), "k.png", "image/png", []byte("x"))
	require.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, 2, putter.calls)
}

func TestR2LogoStorage_ClientErrorsDoNotTripBreaker(t *testing.T) {
	putter := &fakePutter{err: statusError(http.StatusForbidden)}
	store := newR2LogoStorage(putter, R2Config{
		Bucket:        "logos",
		PublicBaseURL: "https://cdn",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
		},
	}, nil)

	for i := 0; i < 3; i++ {
		_, err := store.Upload(context.Background(), "k.png", "image/png", []byte("x"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errStorageTransient)
		assert.NotErrorIs(t, err, resilience.ErrCircuitOpen)
	}
	assert.Equal(t, 3, putter.calls)
}

func TestIsTransientStorageError(t *testing.T) {
	assert.False(t, isTransientStorageError(nil))
	assert.True(t, isTransientStorageError(errors.New("dial tcp: timeout")))
	assert.True(t, isTransientStorageError(statusError(http.StatusTooManyRequests)))
	assert.True(t, isTransientStorageError(statusError(http.StatusBadGateway)))
	assert.False(t, isTransientStorageError(statusError(http.StatusNotFound)))
}

func TestNewR2LogoStorage_RequiresConfig(t *testing.T) {
	_, err := NewR2LogoStorage(context.Background(), R2Config{Bucket: "logos"}, nil)
	require.Error(t, err)
}
