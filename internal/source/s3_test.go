package source

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

// objectRoundTripper serves GetObject for a fixed set of keys.
type objectRoundTripper struct {
	objects map[string][]byte
	paths   []string
}

func (m *objectRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.paths = append(m.paths, req.URL.Path)
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	body, ok := []byte(nil), false
	if len(parts) == 2 {
		body, ok = m.objects[parts[1]]
	}
	if !ok {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     http.Header{"Content-Type": []string{"application/xml"}},
			Body:       io.NopCloser(strings.NewReader(`<?xml version="1.0"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)),
			Request:    req,
		}, nil
	}
	return &http.Response{
		StatusCode:    http.StatusOK,
		Header:        http.Header{"Content-Type": []string{"text/csv"}},
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

func newTestS3(t *testing.T, rt http.RoundTripper, key string) *S3 {
	t.Helper()
	src, err := NewS3(context.Background(), S3Config{
		Bucket:    "recruitment",
		Key:       key,
		Endpoint:  "https://mock.s3.local",
		PathStyle: true,
	}, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: rt}
		o.Credentials = aws.AnonymousCredentials{}
	})
	require.NoError(t, err)
	return src
}

func TestS3_Load(t *testing.T) {
	rt := &objectRoundTripper{objects: map[string][]byte{"exports/latest.csv": []byte(sampleCSV)}}
	src := newTestS3(t, rt, "exports/latest.csv")

	table, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3://recruitment/exports/latest.csv", table.Source)
	assert.Len(t, table.Rows, 2)
	require.NotEmpty(t, rt.paths)
	assert.Equal(t, "/recruitment/exports/latest.csv", rt.paths[0])
}

func TestS3_MissingObject(t *testing.T) {
	src := newTestS3(t, &objectRoundTripper{objects: map[string][]byte{}}, "nope.csv")

	_, err := src.Load(context.Background())
	assert.True(t, domain.IsDataError(err))
}

func TestNewS3_RequiresBucketAndKey(t *testing.T) {
	_, err := NewS3(context.Background(), S3Config{Bucket: "b"})
	assert.Error(t, err)
}

func TestS3_OversizedObjectIsRejected(t *testing.T) {
	rt := &objectRoundTripper{objects: map[string][]byte{"exports/latest.csv": []byte(sampleCSV)}}
	src := newTestS3(t, rt, "exports/latest.csv")
	limitBodyBytes(t, 16)

	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsDataError(err))
	assert.Contains(t, err.Error(), "exceeds 16 bytes")
}
