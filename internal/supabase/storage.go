// Package supabase is a minimal client for the hosted backend's storage
// REST API. Only the object operations the app needs are covered; the
// backend itself stays an external collaborator reached over HTTP.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// ErrStorage indicates a storage API failure.
var ErrStorage = errors.New("supabase storage request failed")

// StorageError carries HTTP context for a failed storage call. It unwraps to
// ErrStorage.
type StorageError struct {
	StatusCode int
	Op         string
	Cause      error
}

func (e *StorageError) Error() string {
	msg := fmt.Sprintf("%s: op=%s", ErrStorage.Error(), e.Op)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s status=%d", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *StorageError) Unwrap() error { return ErrStorage }

// HTTPClient is implemented by http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StorageClient talks to one bucket with the privileged service key.
type StorageClient struct {
	httpClient HTTPClient
	baseURL    string
	serviceKey string
	bucket     string
}

// Option applies StorageClient options.
type Option func(*StorageClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *StorageClient) { c.httpClient = httpClient }
}

// NewStorage builds a storage client for projectURL's bucket.
func NewStorage(projectURL, serviceKey, bucket string, opts ...Option) *StorageClient {
	c := &StorageClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(projectURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload stores an object and returns its public URL.
func (c *StorageClient) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return "", &StorageError{Op: "upload", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)

	if err := c.do(req, "upload", nil); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path), nil
}

// SignedURL issues a time-limited download URL for a stored object.
func (c *StorageClient) SignedURL(ctx context.Context, path string, expiresIn time.Duration) (string, error) {
	body, _ := json.Marshal(map[string]int{"expiresIn": int(expiresIn.Seconds())})
	reqURL := fmt.Sprintf("%s/storage/v1/object/sign/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", &StorageError{Op: "sign", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		SignedURL string `json:"signedURL"`
	}
	if err := c.do(req, "sign", &resp); err != nil {
		return "", err
	}
	return c.baseURL + "/storage/v1" + resp.SignedURL, nil
}

// Delete removes a stored object. Deleting a missing object is not an error.
func (c *StorageClient) Delete(ctx context.Context, path string) error {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return &StorageError{Op: "delete", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	err = c.do(req, "delete", nil)
	var se *StorageError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}

func (c *StorageClient) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &StorageError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StorageError{Op: op, StatusCode: resp.StatusCode}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &StorageError{Op: op, Cause: err}
		}
	}
	return nil
}
