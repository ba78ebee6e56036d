package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	zerrors "github.com/zpodfactory/zpodtg/internal/errors"
	"github.com/zpodfactory/zpodtg/internal/output"
)

// requestTimeout bounds every API call. Calls are not retried.
const requestTimeout = 30 * time.Second

// Client is a read-only client for the zpodfactory API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the given zpodapi host and access token.
func New(host, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(host, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// GetZPod fetches a single zPod record by name.
// Failures are fatal for the caller and carry a categorized sentinel;
// a 404 means the named zPod does not exist.
func (c *Client) GetZPod(ctx context.Context, name string) (*ZPod, error) {
	var zpod ZPod
	if err := c.get(ctx, "/zpods/name="+url.PathEscape(name), &zpod); err != nil {
		var statusErr *apiStatusError
		if errors.As(err, &statusErr) && statusErr.status == http.StatusNotFound {
			return nil, zerrors.Wrap(zerrors.ErrNotFound, fmt.Sprintf("zPod %q not found", name))
		}
		return nil, err
	}
	return &zpod, nil
}

// ListZPods fetches all zPod records.
func (c *Client) ListZPods(ctx context.Context) ([]ZPod, error) {
	var zpods []ZPod
	if err := c.get(ctx, "/zpods", &zpods); err != nil {
		return nil, err
	}
	return zpods, nil
}

// GetDNSRecords fetches the DNS entries for a zPod. DNS records are
// enrichment only: any failure logs a warning and yields an empty list
// so rendering can continue.
func (c *Client) GetDNSRecords(ctx context.Context, zpodID any) []DNSRecord {
	var records []DNSRecord
	if err := c.get(ctx, "/zpods/"+formatID(zpodID)+"/dns", &records); err != nil {
		output.Warn("could not fetch DNS entries", "error", err)
		return []DNSRecord{}
	}
	return records
}

// GetSettings fetches the global zPodFactory settings. Settings are
// enrichment only and degrade to an empty list on failure.
func (c *Client) GetSettings(ctx context.Context) []Setting {
	var settings []Setting
	if err := c.get(ctx, "/settings", &settings); err != nil {
		output.Warn("could not fetch settings", "error", err)
		return []Setting{}
	}
	return settings
}

// apiStatusError wraps a non-200 API error with its HTTP status, so
// endpoint methods can map specific codes onto their own taxonomy.
type apiStatusError struct {
	status int
	err    error
}

func (e *apiStatusError) Error() string { return e.err.Error() }
func (e *apiStatusError) Unwrap() error { return e.err }

// get issues one blocking GET and decodes the JSON response into out.
// Status codes map onto the error taxonomy: 401 auth, any other
// non-200 a generic API error carrying its status code. Only endpoints
// addressing a single resource treat 404 as not-found; list and
// collection endpoints keep it generic.
func (c *Client) get(ctx context.Context, path string, out any) error {
	u := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return zerrors.Wrapf(zerrors.ErrAPI, err, "building request")
	}
	req.Header.Set("access_token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerrors.Wrapf(zerrors.ErrConnection, err,
			fmt.Sprintf("cannot connect to zpodapi at %s", c.baseURL))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return zerrors.Wrap(zerrors.ErrAuth, "authentication failed, check your API token")
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &apiStatusError{
			status: resp.StatusCode,
			err: zerrors.Wrap(zerrors.ErrAPI,
				fmt.Sprintf("GET %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerrors.Wrapf(zerrors.ErrAPI, err, "decoding API response")
	}

	return nil
}

// formatID renders a zPod id for use in a URL path. JSON numbers decode
// as float64, so integral floats are printed without an exponent or
// fraction.
func formatID(id any) string {
	switch v := id.(type) {
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	case string:
		return url.PathEscape(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
