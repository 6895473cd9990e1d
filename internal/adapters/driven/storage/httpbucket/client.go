// Package httpbucket implements the lead store against a plain HTTP object
// bucket: one JSON resource holding the whole collection, fetched and
// replaced in full, plus a backups/ namespace of timestamped snapshots.
package httpbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/threec-labs/leads-cli/internal/core/domain"
	"github.com/threec-labs/leads-cli/internal/core/ports/driven"
	"github.com/threec-labs/leads-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.LeadStore = (*Client)(nil)

const (
	// LeadsKey is the fixed key of the primary resource.
	LeadsKey = "leads-data.json"

	// BackupPrefix is the key namespace for snapshots.
	BackupPrefix = "backups/leads-backup-"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// writesPerSecond caps write traffic to the bucket. Saves are rare
	// (debounced) but backups and imports can arrive back to back.
	writesPerSecond = 2
	writeBurst      = 4
)

// Client is a thin whole-document get/put client over a bucket URL.
type Client struct {
	baseURL string
	http    *http.Client
	writes  *rate.Limiter
	now     func() time.Time
}

// New creates a client for the given bucket base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		writes:  rate.NewLimiter(rate.Limit(writesPerSecond), writeBurst),
		now:     time.Now,
	}
}

// Load fetches the whole collection. A 404 means the document has not been
// created yet and yields an empty collection; any other non-2xx status or
// transport failure propagates.
func (c *Client) Load(ctx context.Context) ([]domain.Lead, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(LeadsKey), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.Debug("no leads document yet, starting empty")
		return []domain.Lead{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("load leads: unexpected status %d", resp.StatusCode)
	}

	var leads []domain.Lead
	if err := json.NewDecoder(resp.Body).Decode(&leads); err != nil {
		return nil, fmt.Errorf("decode leads document: %w", err)
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	return leads, nil
}

// Save replaces the stored collection.
func (c *Client) Save(ctx context.Context, leads []domain.Lead) error {
	return c.put(ctx, LeadsKey, leads)
}

// Backup writes a timestamped snapshot under the backup namespace. The
// timestamp is RFC 3339 with colons and periods replaced so the key is
// safe for any object store.
func (c *Client) Backup(ctx context.Context, leads []domain.Lead) (string, error) {
	ts := c.now().UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	key := BackupPrefix + ts + ".json"

	if err := c.put(ctx, key, leads); err != nil {
		return "", err
	}
	logger.Info("backup written to %s", key)
	return key, nil
}

// HealthCheck probes the primary resource. A 404 still proves the bucket is
// reachable, distinguishing store-unreachable from not-yet-created.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url(LeadsKey), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if (resp.StatusCode >= 200 && resp.StatusCode <= 299) || resp.StatusCode == http.StatusNotFound {
		return nil
	}
	return fmt.Errorf("%w: status %d", domain.ErrStoreUnavailable, resp.StatusCode)
}

// put writes the serialized collection to a key.
func (c *Client) put(ctx context.Context, key string, leads []domain.Lead) error {
	if leads == nil {
		leads = []domain.Lead{}
	}
	body, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leads document: %w", err)
	}

	if err := c.writes.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url(key), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("save %s: unexpected status %d", key, resp.StatusCode)
	}
	return nil
}

func (c *Client) url(key string) string {
	return c.baseURL + "/" + key
}
