package cmdenv

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"s3-cloud/internal/shared/config"
	"s3-cloud/internal/shared/credstore"
	"s3-cloud/internal/shared/logger"
	"s3-cloud/internal/shared/s3ops"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenS3(t *testing.T) {
	var buf bytes.Buffer
	b, err := OpenS3(context.Background(), "photos",
		credstore.Credentials{AccessKey: "AKID", SecretKey: "SECRET"},
		config.Options{Region: "sa-east-1", Endpoint: "http://localhost:9000"},
		logger.New(&buf, false),
	)
	require.NoError(t, err)

	s3b, ok := b.(*s3ops.S3Bucket)
	require.True(t, ok)
	assert.Equal(t, "photos", s3b.Name())
	assert.Equal(t, "sa-east-1", s3b.Region())
}

// newS3Server answers every request for method and path with the given
// status and body, and 500 for anything else.
func newS3Server(t *testing.T, routes map[string]int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		status, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			status = http.StatusInternalServerError
		}
		w.WriteHeader(status)
		if r.Method == http.MethodGet && status == http.StatusOK {
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func openTestBucket(t *testing.T, endpoint string) s3ops.Bucket {
	t.Helper()
	var buf bytes.Buffer
	b, err := OpenS3(context.Background(), "photos",
		credstore.Credentials{AccessKey: "AKID", SecretKey: "SECRET"},
		config.Options{Region: "sa-east-1", Endpoint: endpoint},
		logger.New(&buf, false),
	)
	require.NoError(t, err)
	return b
}

func TestOpenS3ReportsResponseStatus(t *testing.T) {
	ctx := context.Background()
	srv, _ := newS3Server(t, map[string]int{
		"DELETE /photos":           http.StatusOK,
		"HEAD /photos":             http.StatusMovedPermanently,
		"DELETE /photos/notes.txt": http.StatusNoContent,
		"GET /photos/notes.txt":    http.StatusOK,
		"GET /photos/missing.txt":  http.StatusNotFound,
	}, "hello")
	b := openTestBucket(t, srv.URL)

	status, err := b.Delete(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	status, err = b.Head(ctx, "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusMovedPermanently, status)

	status, err = b.DeleteObject(ctx, "/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)

	data, status, err := b.GetObject(ctx, "/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hello", string(data))

	data, status, err = b.GetObject(ctx, "/missing.txt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Empty(t, data)
}

func TestOpenS3SingleAttempt(t *testing.T) {
	srv, hits := newS3Server(t, map[string]int{}, "")
	b := openTestBucket(t, srv.URL)

	status, err := b.PutObject(context.Background(), "/notes.txt", []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestEnvFallbacks(t *testing.T) {
	env := &Env{
		LookupEnv: func(k string) (string, bool) { return "v-" + k, true },
		HomeDir:   func() (string, error) { return "/home/tester", nil },
	}
	v, ok := env.Lookup("ACCESS_KEY")
	assert.True(t, ok)
	assert.Equal(t, "v-ACCESS_KEY", v)

	home, err := env.Home()
	require.NoError(t, err)
	assert.Equal(t, "/home/tester", home)

	mock := s3ops.NewMock()
	env.Open = func(context.Context, string, credstore.Credentials, config.Options, *log.Logger) (s3ops.Bucket, error) {
		return mock, nil
	}
	b, err := env.OpenBucket(context.Background(), "photos", credstore.Credentials{}, config.Options{}, nil)
	require.NoError(t, err)
	assert.Same(t, mock, b)
}
