package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

func TestClient_UploadReturnsSecureURL(t *testing.T) {
	t.Parallel()

	var gotPath, gotPreset, gotFilename string
	var gotContent []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		gotPreset = r.FormValue("upload_preset")
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotContent, _ = io.ReadAll(file)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"secure_url":"https://res.cloudinary.com/mycloud/image/upload/v1/avatar.png"}`)
	}))
	defer srv.Close()

	client := New(Options{CloudName: "mycloud", Preset: "unsigned", Endpoint: srv.URL + "/", HTTPClient: srv.Client()})
	url, err := client.Upload(context.Background(), "avatar.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	assert.Equal(t, "https://res.cloudinary.com/mycloud/image/upload/v1/avatar.png", url)
	assert.Equal(t, "/mycloud/image/upload", gotPath)
	assert.Equal(t, "unsigned", gotPreset)
	assert.Equal(t, "avatar.png", gotFilename)
	assert.Equal(t, pngBytes, gotContent)
}

func TestClient_RejectsNonImagesBeforeNetwork(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := New(Options{Endpoint: srv.URL, HTTPClient: srv.Client()})
	_, err := client.Upload(context.Background(), "notes.txt", strings.NewReader("just some text"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImage))
	assert.False(t, called)
}

func TestClient_NonSuccessStatusCarriesBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Upload preset not found"}}`)
	}))
	defer srv.Close()

	client := New(Options{Endpoint: srv.URL, HTTPClient: srv.Client()})
	_, err := client.Upload(context.Background(), "a.png", bytes.NewReader(pngBytes))

	var uploadErr *apperrors.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, http.StatusBadRequest, uploadErr.StatusCode)
	assert.Contains(t, uploadErr.Body, "Upload preset not found")
	assert.Equal(t, "a.png", uploadErr.File)
}

func TestClient_MissingSecureURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"public_id":"x"}`)
	}))
	defer srv.Close()

	client := New(Options{Endpoint: srv.URL, HTTPClient: srv.Client()})
	_, err := client.Upload(context.Background(), "a.png", bytes.NewReader(pngBytes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secure_url")
}

func TestClient_UploadFile(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"secure_url":"https://example.com/x.png"}`)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "x.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0o644))

	client := New(Options{Endpoint: srv.URL, HTTPClient: srv.Client()})
	url, err := client.UploadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/x.png", url)

	_, err = client.UploadFile(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	var uploadErr *apperrors.UploadError
	require.ErrorAs(t, err, &uploadErr)
}

func TestClient_HonoursContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"secure_url":"https://example.com/x.png"}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(Options{Endpoint: srv.URL, HTTPClient: srv.Client()})
	_, err := client.Upload(ctx, "a.png", bytes.NewReader(pngBytes))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	client := New(Options{})
	assert.Equal(t, "https://api.cloudinary.com/v1_1/demo/image/upload", client.URL())
	assert.Equal(t, DefaultTimeout, client.http.Timeout)
}
