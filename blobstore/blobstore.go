package blobstore

import (
	"context"
	"strings"
)

// DeleteResult reports the outcome for a single key of a batch delete.
type DeleteResult struct {
	Key string
	Err error
}

// Client talks to the external blob service that holds the actual file
// bytes. Deletes are idempotent on the service side: deleting a key that is
// already gone succeeds.
type Client interface {
	DeleteBlobs(ctx context.Context, keys []string) []DeleteResult
}

// KeyFromURL derives the blob key from a file's public URL by stripping the
// service's public base URL. A URL that does not carry the prefix is
// returned unchanged and treated as a raw key.
func KeyFromURL(url string, publicBaseURL string) string {
	return strings.TrimPrefix(url, publicBaseURL)
}
