package httpx

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveCompressed(t *testing.T, cfg CompressionConfig, h http.HandlerFunc, acceptEncoding string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if acceptEncoding != "" {
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}
	rec := httptest.NewRecorder()
	Compression(cfg)(h).ServeHTTP(rec, req)
	return rec
}

func TestCompression(t *testing.T) {
	body := strings.Repeat("<p>salon</p>", 500)
	html := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, body)
	}

	tests := []struct {
		name           string
		acceptEncoding string
		level          int
		wantGzip       bool
	}{
		{name: "gzip accepted", acceptEncoding: "gzip, deflate", level: 6, wantGzip: true},
		{name: "fastest level", acceptEncoding: "gzip", level: 1, wantGzip: true},
		{name: "out of range level uses default", acceptEncoding: "gzip", level: 42, wantGzip: true},
		{name: "gzip disabled by q=0", acceptEncoding: "gzip;q=0, deflate", level: 6},
		{name: "no gzip", acceptEncoding: "deflate", level: 6},
		{name: "no header", level: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveCompressed(t, CompressionConfig{Level: tt.level}, html, tt.acceptEncoding)
			assert.Equal(t, http.StatusOK, rec.Code)

			if !tt.wantGzip {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rec.Body.String())
				return
			}
			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
			zr, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			got, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
		})
	}
}

func TestCompression_SkipsSmallAndBinary(t *testing.T) {
	small := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<p>ok</p>")
	}
	rec := serveCompressed(t, CompressionConfig{MinSize: 1024}, small, "gzip")
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "<p>ok</p>", rec.Body.String())

	png := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
	}
	rec = serveCompressed(t, CompressionConfig{}, png, "gzip")
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Len(t, rec.Body.Bytes(), 4096)
}

func TestCompression_NoContentPassesThrough(t *testing.T) {
	rec := serveCompressed(t, CompressionConfig{}, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Hx-Trigger", `{"tabChanged":true}`)
		w.WriteHeader(http.StatusNoContent)
	}, "gzip")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestAcceptsGzip(t *testing.T) {
	assert.True(t, acceptsGzip("gzip"))
	assert.True(t, acceptsGzip("br, GZIP;q=0.5"))
	assert.False(t, acceptsGzip("gzip; q=0"))
	assert.False(t, acceptsGzip("x-gzip-ish"))
	assert.False(t, acceptsGzip(""))
}
