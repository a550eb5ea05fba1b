package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every upstream call that has no tighter deadline.
const DefaultTimeout = 15 * time.Second

type reqConfig struct {
	Method      string
	URL         string
	ContentType string
	Body        io.Reader
}

func request[T any](ctx context.Context, client *http.Client, cfg reqConfig) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, cfg.Method, cfg.URL, cfg.Body)
	if err != nil {
		return nil, err
	}
	if cfg.ContentType != "" {
		req.Header.Set("Content-Type", cfg.ContentType)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: unexpected status %d", cfg.Method, cfg.URL, resp.StatusCode)
	}

	var t T
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", cfg.Method, cfg.URL, err)
	}
	return &t, nil
}

func httpClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// resolveImageURL turns an upstream-relative image path into an absolute URL.
func resolveImageURL(baseURL, imageURL string) string {
	if imageURL == "" {
		return ""
	}
	if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	if strings.HasPrefix(imageURL, "/") {
		return baseURL + imageURL
	}
	return baseURL + "/" + imageURL
}
