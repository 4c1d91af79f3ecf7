package resource_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowglyph/flowglyph/flowerr"
	"github.com/flowglyph/flowglyph/resource"
)

func TestChainOrdersByPriority(t *testing.T) {
	c := resource.NewChain(resource.FileLoader{}, resource.DataURLLoader{}, resource.EmbeddedLoader{})
	// FileLoader also reports CanHandle for a data: URI (it has no "://"),
	// so this only succeeds if DataURLLoader (50) runs before FileLoader
	// (100) despite being passed in later.
	data, err := c.Load(context.Background(), "data:text/plain;base64,aGVsbG8=", 1<<20)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func TestChainNoLoaderMatches(t *testing.T) {
	c := resource.NewChain()
	_, err := c.Load(context.Background(), "ftp://example.com/x", 1<<20)
	require.Error(t, err)
	var fe *flowerr.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, flowerr.CodeResourceNotFound, fe.Code)
}

func TestDataURLLoaderDecodesBase64(t *testing.T) {
	l := resource.DataURLLoader{}
	payload := base64.StdEncoding.EncodeToString([]byte("payload"))
	data, err := l.Load(context.Background(), "data:application/octet-stream;base64,"+payload, 1<<20)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
}

func TestDataURLLoaderRejectsNonBase64(t *testing.T) {
	l := resource.DataURLLoader{}
	_, err := l.Load(context.Background(), "data:text/plain,hello", 1<<20)
	require.Error(t, err)
}

func TestDataURLLoaderEnforcesSizeCap(t *testing.T) {
	l := resource.DataURLLoader{}
	payload := base64.StdEncoding.EncodeToString([]byte("0123456789"))
	_, err := l.Load(context.Background(), "data:;base64,"+payload, 5)
	require.Error(t, err)
}

func TestEmbeddedLoaderResolvesFromMap(t *testing.T) {
	l := resource.EmbeddedLoader{Resources: map[string][]byte{"logo/a.png": []byte("PNGDATA")}}
	data, err := l.Load(context.Background(), "embedded://logo/a.png", 1<<20)
	require.NoError(t, err)
	require.Equal(t, "PNGDATA", string(data))
}

func TestEmbeddedLoaderMissingKey(t *testing.T) {
	l := resource.EmbeddedLoader{Resources: map[string][]byte{}}
	_, err := l.Load(context.Background(), "embedded://missing", 1<<20)
	require.Error(t, err)
}

func TestFileLoaderReadsLocalPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("fontbytes"), 0o644))

	l := resource.FileLoader{}
	data, err := l.Load(context.Background(), path, 1<<20)
	require.NoError(t, err)
	require.Equal(t, "fontbytes", string(data))
}

func TestFileLoaderEnforcesSizeCap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 100), 0o644))

	l := resource.FileLoader{}
	_, err := l.Load(context.Background(), path, 10)
	require.Error(t, err)
}

func TestFileLoaderMissingFile(t *testing.T) {
	l := resource.FileLoader{}
	_, err := l.Load(context.Background(), "/nonexistent/path/x.bin", 1<<20)
	require.Error(t, err)
}

func TestHTTPLoaderFetchesSuccessfully(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote-bytes"))
	}))
	defer srv.Close()

	l := resource.NewHTTPLoader(5)
	data, err := l.Load(context.Background(), srv.URL, 1<<20)
	require.NoError(t, err)
	require.Equal(t, "remote-bytes", string(data))
}

func TestHTTPLoaderRetriesOn5xxThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok-after-retry"))
	}))
	defer srv.Close()

	l := resource.NewHTTPLoader(5)
	data, err := l.Load(context.Background(), srv.URL, 1<<20)
	require.NoError(t, err)
	require.Equal(t, "ok-after-retry", string(data))
	require.Equal(t, 2, calls)
}

func TestHTTPLoaderDoesNotRetryOn4xx(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	l := resource.NewHTTPLoader(5)
	_, err := l.Load(context.Background(), srv.URL, 1<<20)
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestHTTPLoaderCanHandleSchemes(t *testing.T) {
	l := &resource.HTTPLoader{}
	require.True(t, l.CanHandle("http://example.com/a.png"))
	require.True(t, l.CanHandle("https://example.com/a.png"))
	require.False(t, l.CanHandle("ftp://example.com/a.png"))
}
