// Package inventory implements the client of the paginated service-inventory API.
package inventory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Endpoint names used in errors and metrics.
const (
	EndpointRoles          = "roles"
	EndpointServiceEntries = "service_entries"
	EndpointRules          = "rules"
)

// Client implements ports.Upstream over HTTP with basic authentication.
type Client struct {
	baseURL    string
	username   string
	password   string
	pageSize   int
	httpClient *http.Client
}

var _ ports.Upstream = (*Client)(nil)

// NewClient creates a Client from cfg.
func NewClient(cfg domain.APIConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, zerr.With(zerr.With(domain.ErrInvalidConfig, "key", "api.base_url"), "reason", "required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "key", "api.base_url")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultRequestTimeout
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ListRoles returns one page of role names.
func (c *Client) ListRoles(ctx context.Context, cursor string) (domain.RolePage, error) {
	var resp rolesResponse
	if err := c.get(ctx, EndpointRoles, c.pageURL(cursor, "/Roles"), &resp); err != nil {
		return domain.RolePage{}, err
	}

	page := domain.RolePage{Roles: make([]string, 0, len(resp.Items)), Next: next(resp.Meta)}
	for _, item := range resp.Items {
		page.Roles = append(page.Roles, item.Name)
	}
	return page, nil
}

// ListServiceEntries returns one page of service entries.
// Entries without a usable backend list are returned with Malformed set.
func (c *Client) ListServiceEntries(ctx context.Context, cursor string) (domain.ServiceEntryPage, error) {
	var resp serviceEntriesResponse
	if err := c.get(ctx, EndpointServiceEntries, c.pageURL(cursor, "/ServiceEntries"), &resp); err != nil {
		return domain.ServiceEntryPage{}, err
	}

	page := domain.ServiceEntryPage{Entries: make([]domain.ServiceEntry, 0, len(resp.Items)), Next: next(resp.Meta)}
	for _, item := range resp.Items {
		page.Entries = append(page.Entries, decodeEntry(item))
	}
	return page, nil
}

// ListRules returns one page of the ingress rules of role.
func (c *Client) ListRules(ctx context.Context, role, cursor string) (domain.RulePage, error) {
	var resp rulesResponse
	path := "/Roles/" + url.PathEscape(role) + "/Rules"
	if err := c.get(ctx, EndpointRules, c.pageURL(cursor, path), &resp); err != nil {
		return domain.RulePage{}, zerr.With(err, "role", role)
	}

	page := domain.RulePage{IngressRoles: make([]string, 0, len(resp.Items)), Next: next(resp.Meta)}
	for _, item := range resp.Items {
		page.IngressRoles = append(page.IngressRoles, item.IngressRole)
	}
	return page, nil
}

func decodeEntry(item serviceEntryDTO) domain.ServiceEntry {
	entry := domain.ServiceEntry{Role: item.ServiceName}

	var cfg serviceConfigurationDTO
	if len(item.ServiceConfiguration) == 0 ||
		json.Unmarshal(item.ServiceConfiguration, &cfg) != nil ||
		cfg.Backends == nil {
		entry.Malformed = true
		return entry
	}

	for _, backend := range *cfg.Backends {
		if backend.ServiceName == "" {
			entry.Malformed = true
			continue
		}
		entry.Backends = append(entry.Backends, backend.ServiceName)
	}
	return entry
}

// pageURL resolves the URL of a page. A non-empty cursor is the absolute
// URL the server returned as the next page.
func (c *Client) pageURL(cursor, path string) string {
	raw := cursor
	if raw == "" {
		raw = c.baseURL + path
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Get("page_size") == "" {
		q.Set("page_size", strconv.Itoa(c.pageSize))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func next(meta pageMeta) string {
	if meta.Next == nil {
		return ""
	}
	return *meta.Next
}

func (c *Client) get(ctx context.Context, endpoint, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUpstreamRequestFailed.Error()), "endpoint", endpoint)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUpstreamRequestFailed.Error()), "endpoint", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrUpstreamRequestFailed, "status_code", resp.StatusCode)
		return zerr.With(apiErr, "endpoint", endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUpstreamRequestFailed.Error()), "endpoint", endpoint)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUpstreamParseFailed.Error()), "endpoint", endpoint)
	}
	return nil
}
