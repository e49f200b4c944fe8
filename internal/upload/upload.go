// Package upload sends images to Cloudinary with an unsigned preset and
// returns the hosted URL for avatar and attachment fields.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"
)

// Defaults point at Cloudinary's public demo account.
const (
	DefaultEndpoint  = "https://api.cloudinary.com/v1_1"
	DefaultCloudName = "demo"
	DefaultPreset    = "docs_upload_example_us_preset"
	DefaultTimeout   = 30 * time.Second
)

const (
	sniffLen      = 512
	maxErrorBody  = 4 << 10
	imageMIMEKind = "image/"
)

// ErrNotImage is returned before any network call when the content is not an image.
var ErrNotImage = errors.New("content is not an image")

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	CloudName  string
	Preset     string
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client uploads images. It is safe for concurrent use.
type Client struct {
	cloudName string
	preset    string
	endpoint  string
	http      *http.Client
}

// New builds a client from opts.
func New(opts Options) *Client {
	c := &Client{
		cloudName: firstNonEmpty(opts.CloudName, DefaultCloudName),
		preset:    firstNonEmpty(opts.Preset, DefaultPreset),
		endpoint:  strings.TrimRight(firstNonEmpty(opts.Endpoint, DefaultEndpoint), "/"),
		http:      opts.HTTPClient,
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.http = &http.Client{Timeout: timeout}
	}
	return c
}

// URL returns the upload endpoint for the configured cloud.
func (c *Client) URL() string {
	return fmt.Sprintf("%s/%s/image/upload", c.endpoint, c.cloudName)
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// UploadFile opens path and uploads its content.
func (c *Client) UploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperrors.NewUploadError(path, 0, "", err)
	}
	defer f.Close()

	return c.Upload(ctx, filepath.Base(path), f)
}

// Upload posts the image read from r and returns its secure URL.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", apperrors.NewUploadError(filename, 0, "", err)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), imageMIMEKind) {
		return "", apperrors.NewUploadError(filename, 0, "", fmt.Errorf("%w: detected %s", ErrNotImage, mt.String()))
	}

	body, contentType, err := c.form(filename, io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return "", apperrors.NewUploadError(filename, 0, "", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), body)
	if err != nil {
		return "", apperrors.NewUploadError(filename, 0, "", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.NewUploadError(filename, 0, "", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewUploadError(filename, resp.StatusCode, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.NewUploadError(filename, resp.StatusCode, truncate(payload), nil)
	}

	var decoded uploadResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", apperrors.NewUploadError(filename, resp.StatusCode, truncate(payload), fmt.Errorf("decode response: %w", err))
	}
	if decoded.SecureURL == "" {
		msg := "response carried no secure_url"
		if decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		return "", apperrors.NewUploadError(filename, resp.StatusCode, truncate(payload), errors.New(msg))
	}

	return decoded.SecureURL, nil
}

func (c *Client) form(filename string, content io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", firstNonEmpty(filename, "upload"))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if err := w.WriteField("upload_preset", c.preset); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return strings.TrimSpace(string(body))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
