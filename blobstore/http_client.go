package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ScheffChuk/drive-t3-s/config"
)

type HTTPClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewHTTPClient(cfg *config.BlobStoreConfig) *HTTPClient {
	return &HTTPClient{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
	}
}

type deleteRequest struct {
	Keys []string `json:"keys"`
}

type deleteResponse struct {
	Results map[string]struct {
		Deleted bool   `json:"deleted"`
		Error   string `json:"error"`
	} `json:"results"`
}

// DeleteBlobs issues one batch delete call and maps the response back to
// per-key results. A transport-level failure is reported against every key
// so callers can treat each blob independently.
func (c *HTTPClient) DeleteBlobs(ctx context.Context, keys []string) []DeleteResult {
	results := make([]DeleteResult, 0, len(keys))
	if len(keys) == 0 {
		return results
	}

	body, err := json.Marshal(deleteRequest{Keys: keys})
	if err != nil {
		return failAll(keys, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/blobs/delete", bytes.NewReader(body))
	if err != nil {
		return failAll(keys, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return failAll(keys, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return failAll(keys, fmt.Errorf("blob service returned %d: %s", resp.StatusCode, string(raw)))
	}

	var parsed deleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return failAll(keys, err)
	}

	for _, key := range keys {
		result := DeleteResult{Key: key}
		if entry, ok := parsed.Results[key]; ok && !entry.Deleted {
			msg := entry.Error
			if msg == "" {
				msg = "delete rejected"
			}
			result.Err = fmt.Errorf("blob %s: %s", key, msg)
		}
		results = append(results, result)
	}
	return results
}

func failAll(keys []string, err error) []DeleteResult {
	results := make([]DeleteResult, 0, len(keys))
	for _, key := range keys {
		results = append(results, DeleteResult{Key: key, Err: err})
	}
	return results
}
