package ipa

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	beans "github.com/appuploader/itunes-service-v3/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWritesPackageToDir(t *testing.T) {
	payload := []byte("ipa-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	item := &beans.DownloadItem{
		URL: srv.URL + "/app.ipa",
		Metadata: map[string]any{
			"bundleDisplayName":        "Demo App",
			"bundleShortVersionString": "2.1.0",
		},
	}
	target, e := Fetch(item, dir)
	require.NoError(t, e)
	assert.Equal(t, dir, filepath.Dir(target))

	written, e := os.ReadFile(target)
	require.NoError(t, e)
	assert.Equal(t, payload, written)
}

func TestFetchRejectsEmptyItem(t *testing.T) {
	_, e := Fetch(nil, t.TempDir())
	assert.Error(t, e)
	_, e = Fetch(&beans.DownloadItem{}, t.TempDir())
	assert.Error(t, e)
}

func TestFetchSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, e := Fetch(&beans.DownloadItem{URL: srv.URL + "/app.ipa"}, t.TempDir())
	assert.Error(t, e)
}

func TestFileName(t *testing.T) {
	name := FileName(map[string]any{
		"bundleDisplayName":        "My App: Pro/Max",
		"bundleShortVersionString": "3.0",
	})
	assert.Regexp(t, `^My_App___Pro_Max_v3\.0_\d+\.ipa$`, name)

	name = FileName(map[string]any{"itemName": "Fallback", "bundleShortVersionString": "1.0"})
	assert.Regexp(t, `^Fallback_v1\.0_\d+\.ipa$`, name)

	name = FileName(map[string]any{"itemId": uint64(424242)})
	assert.Regexp(t, `^424242_v_\d+\.ipa$`, name)
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 Bytes", FormatFileSize(0))
	assert.Equal(t, "512.00 Bytes", FormatFileSize(512))
	assert.Equal(t, "1.00 KB", FormatFileSize(1024))
	assert.Equal(t, "1.50 MB", FormatFileSize(1572864))
	assert.Equal(t, "2.00 GB", FormatFileSize(2147483648))
}
