package atsinfra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	downloadTimeout = 30 * time.Second
	maxDownloadSize = 20 * 1024 * 1024 // 20MB
)

// HTTPResumeFetcher downloads resume documents over HTTP. It satisfies
// ats.ResumeFetcher.
type HTTPResumeFetcher struct {
	client *http.Client
}

func NewHTTPResumeFetcher() *HTTPResumeFetcher {
	return &HTTPResumeFetcher{
		client: &http.Client{Timeout: downloadTimeout},
	}
}

func (f *HTTPResumeFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build download request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download resume: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download resume: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize))
	if err != nil {
		return nil, "", fmt.Errorf("read resume body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
