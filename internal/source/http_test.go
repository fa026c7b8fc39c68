package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/domain"
)

func TestHTTP_LoadCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sheet/export", r.URL.Path)
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	src, err := NewHTTP(srv.URL+"/sheet/export?format=csv", FormatAuto, srv.Client())
	require.NoError(t, err)

	table, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, src.URL, table.Source)
}

func TestHTTP_LoadSheetsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"range": "Sheet1!A1:E3",
			"majorDimension": "ROWS",
			"values": [
				["Region", "Project", "Sub_Division", "Staff_Lead", "Role"],
				["UAE", "Alpha", "Alpha", "Dana", "Engineer"],
				["KSA", "Gamma", "", "", 3]
			]
		}`))
	}))
	defer srv.Close()

	src, err := NewHTTP(srv.URL, FormatSheetsJSON, srv.Client())
	require.NoError(t, err)

	table, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"KSA", "Gamma", "", "", "3"}, table.Rows[1])
}

func TestHTTP_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/json" {
			_, _ = w.Write([]byte(`{"error": "forbidden"}`))
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src, err := NewHTTP(srv.URL+"/csv", FormatCSV, srv.Client())
	require.NoError(t, err)
	_, err = src.Load(context.Background())
	assert.True(t, domain.IsDataError(err))
	assert.Contains(t, err.Error(), "500")

	src, err = NewHTTP(srv.URL+"/json", FormatSheetsJSON, srv.Client())
	require.NoError(t, err)
	_, err = src.Load(context.Background())
	assert.True(t, domain.IsDataError(err))
	assert.Contains(t, err.Error(), "missing values")

	_, err = NewHTTP("not a url", FormatCSV, nil)
	assert.Error(t, err)
	_, err = NewHTTP(srv.URL, Format("xml"), nil)
	assert.Error(t, err)
}

// limitBodyBytes lowers maxBodyBytes for the duration of the test.
func limitBodyBytes(t *testing.T, n int64) {
	t.Helper()
	prev := maxBodyBytes
	maxBodyBytes = n
	t.Cleanup(func() { maxBodyBytes = prev })
}

func TestHTTP_OversizedBodyIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	src, err := NewHTTP(srv.URL+"/export.csv", FormatAuto, srv.Client())
	require.NoError(t, err)

	limitBodyBytes(t, int64(len(sampleCSV)))
	table, err := src.Load(context.Background())
	require.NoError(t, err, "a body of exactly the limit is read")
	assert.Len(t, table.Rows, 2)

	limitBodyBytes(t, int64(len(sampleCSV))-1)
	_, err = src.Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsDataError(err))
	assert.Contains(t, err.Error(), "exceeds")
}
