package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	appErrors "github.com/klcse/faculty-option-api/pkg/errors"
)

// Fetcher retrieves raw flat-file text from HTTP URLs or local paths with a
// request timeout and a single retry. Parse-level problems are not its
// concern; only total fetch failure is an error, surfaced as
// COLLABORATOR_UNAVAILABLE.
type Fetcher struct {
	client *http.Client
}

// NewFetcher builds a fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the raw text of one source, retrying once on failure.
func (f *Fetcher) Fetch(ctx context.Context, src string) (string, error) {
	text, err := f.fetchOnce(ctx, src)
	if err == nil {
		return text, nil
	}
	if ctx.Err() != nil {
		return "", appErrors.Wrap(ctx.Err(), appErrors.ErrCollaboratorUnavailable.Code, appErrors.ErrCollaboratorUnavailable.Status, appErrors.ErrCollaboratorUnavailable.Message)
	}

	text, retryErr := f.fetchOnce(ctx, src)
	if retryErr != nil {
		return "", appErrors.Wrap(retryErr, appErrors.ErrCollaboratorUnavailable.Code, appErrors.ErrCollaboratorUnavailable.Status, appErrors.ErrCollaboratorUnavailable.Message)
	}
	return text, nil
}

// FetchAll retrieves every source concurrently and returns the texts in the
// input order. Ordering between batches does not matter to callers (parsing
// is commutative), but a stable order keeps results reproducible.
func (f *Fetcher) FetchAll(ctx context.Context, sources []string) ([]string, error) {
	type result struct {
		idx  int
		text string
		err  error
	}

	results := make(chan result, len(sources))
	for i, src := range sources {
		go func(idx int, src string) {
			text, err := f.Fetch(ctx, src)
			results <- result{idx: idx, text: text, err: err}
		}(i, src)
	}

	texts := make([]string, len(sources))
	for range sources {
		res := <-results
		if res.err != nil {
			return nil, res.err
		}
		texts[res.idx] = res.text
	}
	return texts, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, src string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return "", err
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close() //nolint:errcheck
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch %s: unexpected status %d", src, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	body, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
