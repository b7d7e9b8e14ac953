package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	m "upm.dev/pkg/upm/internal/model"
)

// ErrPackageNotFound is returned when no published version matches a request.
var ErrPackageNotFound = errors.New("package not found in registry")

// PackageInfo is the registry's answer to a find request.
type PackageInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	// DownloadURL locates the archive. It may be relative to the registry
	// base URL; when empty the standard download endpoint is used.
	DownloadURL string `json:"download_url,omitempty"`
}

// Download is an open archive stream returned by the registry.
type Download struct {
	Body     io.ReadCloser
	Filename string
	// Size is the announced length in bytes, or -1 when unknown.
	Size int64
}

// RegistryAdapter resolves package references and streams archives.
type RegistryAdapter interface {
	FindPackage(ctx context.Context, name, selector string) (*PackageInfo, error)
	Download(ctx context.Context, info PackageInfo) (*Download, error)
}

// HTTPRegistryAdapter talks to a upm registry over HTTP.
type HTTPRegistryAdapter struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRegistryAdapter constructs a registry client. timeout bounds the
// wait for response headers; the body of a download is not time-limited.
func NewHTTPRegistryAdapter(baseURL string, timeout time.Duration) *HTTPRegistryAdapter {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout

	return &HTTPRegistryAdapter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Transport: transport},
	}
}

// FindPackage asks the registry for the newest version of name matching selector.
func (r *HTTPRegistryAdapter) FindPackage(ctx context.Context, name, selector string) (*PackageInfo, error) {
	if selector == "" {
		selector = m.AnySelector
	}

	endpoint := fmt.Sprintf("%s/api/find/%s/%s", r.baseURL, url.PathEscape(name), url.PathEscape(selector))

	resp, err := r.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s@%s", ErrPackageNotFound, name, selector)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d for %s@%s", resp.StatusCode, name, selector)
	}

	var info PackageInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("invalid registry response for %s@%s: %w", name, selector, err)
	}

	if info.Name == "" || info.Version == "" {
		return nil, fmt.Errorf("incomplete registry response for %s@%s", name, selector)
	}

	return &info, nil
}

// Download opens the archive of info. The caller closes Body.
func (r *HTTPRegistryAdapter) Download(ctx context.Context, info PackageInfo) (*Download, error) {
	name, version := info.Name, info.Version

	endpoint, err := r.downloadURL(info)
	if err != nil {
		return nil, err
	}

	resp, err := r.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s@%s", ErrPackageNotFound, name, version)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("registry returned status %d downloading %s@%s", resp.StatusCode, name, version)
	}

	filename := responseFilename(resp.Header.Get("Content-Disposition"))
	if filename == "" {
		filename = fmt.Sprintf("%s-%s.tar.gz", strings.ReplaceAll(strings.TrimPrefix(name, "@"), "/", "-"), version)
	}

	return &Download{Body: resp.Body, Filename: filename, Size: resp.ContentLength}, nil
}

// downloadURL resolves the archive location of info against the base URL.
func (r *HTTPRegistryAdapter) downloadURL(info PackageInfo) (string, error) {
	if info.DownloadURL == "" {
		return fmt.Sprintf("%s/api/download/%s/%s", r.baseURL, url.PathEscape(info.Name), url.PathEscape(info.Version)), nil
	}

	base, err := url.Parse(r.baseURL + "/")
	if err != nil {
		return "", fmt.Errorf("invalid registry URL %q: %w", r.baseURL, err)
	}

	ref, err := url.Parse(info.DownloadURL)
	if err != nil {
		return "", fmt.Errorf("invalid download location %q for %s@%s: %w", info.DownloadURL, info.Name, info.Version, err)
	}

	return base.ResolveReference(ref).String(), nil
}

func (r *HTTPRegistryAdapter) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not connect to registry: %w", err)
	}

	return resp, nil
}

// responseFilename extracts a safe base file name from a Content-Disposition header.
func responseFilename(header string) string {
	if header == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}

	name := filepath.Base(filepath.Clean("/" + params["filename"]))
	if name == "/" || name == "." {
		return ""
	}

	return name
}
