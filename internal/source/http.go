package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Tausif-Mahmud/xad-recruitment-db/internal/importer"
)

// Format selects how an HTTP response body is parsed.
type Format string

const (
	// FormatAuto picks a decoder from the URL path extension, falling back to CSV.
	FormatAuto Format = ""
	FormatCSV  Format = "csv"
	// FormatSheetsJSON is a Google Sheets values response: {"values": [[...], ...]}.
	FormatSheetsJSON Format = "sheets-json"
)

const defaultHTTPTimeout = 30 * time.Second

// maxBodyBytes bounds how much of a response or object is read. Larger
// bodies are rejected rather than truncated.
var maxBodyBytes int64 = 64 << 20

// HTTP fetches a published sheet.
type HTTP struct {
	URL    string
	Format Format
	client *http.Client
}

// NewHTTP returns an HTTP source. A nil client uses a client with a default timeout.
func NewHTTP(rawURL string, format Format, client *http.Client) (*HTTP, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid source url %q", rawURL)
	}
	switch format {
	case FormatAuto, FormatCSV, FormatSheetsJSON:
	default:
		return nil, fmt.Errorf("unknown http format %q", format)
	}
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HTTP{URL: rawURL, Format: format, client: client}, nil
}

func (h *HTTP) Name() string { return h.URL }

// Load downloads and decodes the body.
func (h *HTTP) Load(ctx context.Context) (*importer.RawTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, dataError(h.URL, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, dataError(h.URL, fmt.Errorf("fetch: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, dataError(h.URL, fmt.Errorf("fetch: unexpected status %s", resp.Status))
	}
	body, err := readBody(resp.Body)
	if err != nil {
		return nil, dataError(h.URL, fmt.Errorf("read body: %w", err))
	}

	var grid [][]string
	if h.Format == FormatSheetsJSON {
		grid, err = decodeSheetsJSON(body)
	} else {
		grid, err = Decode(h.fileName(), body)
	}
	if err != nil {
		return nil, dataError(h.URL, err)
	}
	return importer.NewRawTable(h.URL, grid), nil
}

// readBody reads r whole, failing once it grows past maxBodyBytes.
func readBody(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBodyBytes {
		return nil, fmt.Errorf("exceeds %d bytes", maxBodyBytes)
	}
	return data, nil
}

func (h *HTTP) fileName() string {
	if h.Format == FormatCSV {
		return "export.csv"
	}
	u, err := url.Parse(h.URL)
	if err != nil {
		return "export.csv"
	}
	name := path.Base(u.Path)
	if path.Ext(name) == "" {
		return "export.csv"
	}
	return name
}

// decodeSheetsJSON reads the "values" array of a Sheets API response.
// Cells of any JSON type are converted to their string form.
func decodeSheetsJSON(body []byte) ([][]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("parse sheets json: invalid json")
	}
	values := gjson.GetBytes(body, "values")
	if !values.IsArray() {
		return nil, fmt.Errorf("parse sheets json: missing values array")
	}
	var grid [][]string
	for _, row := range values.Array() {
		cells := row.Array()
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = c.String()
		}
		grid = append(grid, out)
	}
	return grid, nil
}
