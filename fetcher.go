package eortologio

import "context"

// Fetcher retrieves decoded document text from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body as
	// text, with the character encoding already resolved.
	// The context controls cancellation; implementations carry their
	// own timeout. Returns ETIMEOUT when no response arrives in time
	// and EUNAVAILABLE for any other network or protocol failure.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
