package rosterapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// DefaultBaseURL is the production roster service endpoint.
const DefaultBaseURL = "https://app.shiftorganizer.com"

var (
	// ErrLoginFailed is returned on any non-200 login response.
	ErrLoginFailed = errors.New("roster login failed")
	// ErrNoCurrentRota is returned when the rota list is empty.
	ErrNoCurrentRota = errors.New("no current rota")
)

// Client is the HTTP wrapper for the roster service REST API.
// It performs no retries: any non-200 response is a terminal failure
// for that call, surfaced to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new roster service client. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Login authenticates via POST /api/auth/login/ and returns the session
// cookies the service set plus the numeric employee id from the body.
func (c *Client) Login(ctx context.Context, company, username, password string) (Session, int, error) {
	endpoint := fmt.Sprintf("%s/api/auth/login/", c.baseURL)

	body, err := json.Marshal(loginRequest{
		Company:  company,
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal login request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build login request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// Dedicated jar per login so cookies from one user never leak into
	// another user's session.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	client := &http.Client{Jar: jar, Timeout: c.httpClient.Timeout}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to call roster login API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, 0, fmt.Errorf("%w: status %d: %s", ErrLoginFailed, resp.StatusCode, string(raw))
	}

	var loginResp loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, 0, fmt.Errorf("failed to decode login response: %w", err)
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}

	// The jar scopes a path-less cookie to the login endpoint's
	// directory, so matching against the bare base URL would miss it.
	// The final response carries those cookies directly; cookies set on
	// intermediate redirects live only in the jar. Merge both.
	session := Session(resp.Cookies())
	seen := make(map[string]bool, len(session))
	for _, cookie := range session {
		seen[cookie.Name] = true
	}
	for _, cookie := range jar.Cookies(base) {
		if !seen[cookie.Name] {
			session = append(session, cookie)
		}
	}

	return session, loginResp.ID, nil
}

// CurrentRotaID returns the id of the first rota from GET /api/rotas.
// The service lists the active rota first; no further selection logic.
func (c *Client) CurrentRotaID(ctx context.Context, session Session) (int, error) {
	endpoint := fmt.Sprintf("%s/api/rotas", c.baseURL)

	var rotas []Rota
	if err := c.getJSON(ctx, session, endpoint, &rotas); err != nil {
		return 0, fmt.Errorf("failed to fetch rota list: %w", err)
	}
	if len(rotas) == 0 {
		return 0, ErrNoCurrentRota
	}
	return rotas[0].ID, nil
}

// RoleMapping returns role id → display name from GET /api/roles-list/.
func (c *Client) RoleMapping(ctx context.Context, session Session) (map[int]string, error) {
	endpoint := fmt.Sprintf("%s/api/roles-list/", c.baseURL)

	var entries []RoleEntry
	if err := c.getJSON(ctx, session, endpoint, &entries); err != nil {
		return nil, fmt.Errorf("failed to fetch role list: %w", err)
	}

	mapping := make(map[int]string, len(entries))
	for _, entry := range entries {
		mapping[entry.ID] = entry.Name
	}
	return mapping, nil
}

// ShiftCells returns the raw shift cells for one employee within a rota
// from GET /api/cells/?rota=<id>&employee=<id>.
func (c *Client) ShiftCells(ctx context.Context, session Session, rotaID, userID int) ([]Cell, error) {
	endpoint := fmt.Sprintf("%s/api/cells/?rota=%d&employee=%d", c.baseURL, rotaID, userID)

	var cells []Cell
	if err := c.getJSON(ctx, session, endpoint, &cells); err != nil {
		return nil, fmt.Errorf("failed to fetch shift cells: %w", err)
	}
	return cells, nil
}

// getJSON performs an authenticated GET and decodes a 200 JSON body.
func (c *Client) getJSON(ctx context.Context, session Session, endpoint string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for _, cookie := range session {
		httpReq.AddCookie(cookie)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call roster API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("roster API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode roster API response: %w", err)
	}
	return nil
}
