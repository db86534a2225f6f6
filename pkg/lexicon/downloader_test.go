package lexicon

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "word\nthe\nbe\n"

func TestEnsureList_LocalCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "ngsl.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	require.NoError(t, EnsureList(context.Background(), path, srv.URL+"/ngsl.csv"))
	assert.Zero(t, hits.Load())
}

func TestEnsureList_Downloads(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, _ = zw.Write([]byte(sampleCSV))
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ngsl.csv":
			_, _ = w.Write([]byte(sampleCSV))
		case "/ngsl.csv.gz":
			_, _ = w.Write(gz.Bytes())
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	for _, name := range []string{"ngsl.csv", "ngsl.csv.gz"} {
		path := filepath.Join(dir, "lists", name+".out")
		require.NoError(t, EnsureList(context.Background(), path, srv.URL+"/"+name), name)
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sampleCSV, string(got), name)
	}
}

func TestEnsureList_FailureLeavesNothing(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "ngsl.csv")
	assert.Error(t, EnsureList(context.Background(), path, srv.URL+"/missing.csv"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Error(t, EnsureList(context.Background(), path, ""))
}
