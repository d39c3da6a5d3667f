package agilecrm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

const DefaultBaseURL = "https://n8nio.agilecrm.com/dev/"

type Client struct {
	baseURL     string
	credentials entity.AgileCRMCredentials
	http        *http.Client
	logger      *zap.Logger
}

// NewClient não define timeout; quem precisar passa um *http.Client próprio via WithHTTPClient.
func NewClient(baseURL string, credentials entity.AgileCRMCredentials, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:     baseURL,
		credentials: credentials,
		http:        &http.Client{},
		logger:      logger,
	}
}

func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request issues one authenticated call and returns the decoded JSON response.
func (c *Client) Request(ctx context.Context, r Request) (any, error) {
	target := r.URI
	if target == "" {
		target = c.baseURL + r.Endpoint
	}

	// GET e DELETE vão sem body, senão a API responde 400
	return c.do(ctx, r.Method, target, r.Query, r.Body, !omitsBody(r.Method))
}

func (c *Client) do(ctx context.Context, method, target string, query url.Values, body any, withBody bool) (any, error) {
	if len(query) > 0 {
		u, err := url.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("agilecrm: invalid uri %q: %w", target, err)
		}
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
		target = u.String()
	}

	var reader io.Reader
	if withBody {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("agilecrm: marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	c.addAuthHeaders(req, withBody)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("agilecrm request failed",
			zap.String("method", method),
			zap.String("uri", target),
			zap.Int("status", resp.StatusCode),
		)
		return nil, responseError(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("agilecrm: decode response: %w", err)
	}
	return result, nil
}

func (c *Client) addAuthHeaders(req *http.Request, withBody bool) {
	req.SetBasicAuth(c.credentials.Email, c.credentials.APIKey)
	req.Header.Set("Accept", "application/json")
	if withBody {
		req.Header.Set("Content-Type", "application/json")
	}
}

// sameOrigin garante que as credenciais só vão para o host configurado.
func (c *Client) sameOrigin(uri string) error {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("agilecrm: invalid base url %q: %w", c.baseURL, err)
	}
	u, err := url.Parse(uri)
	if err != nil || !strings.EqualFold(u.Scheme, base.Scheme) || !strings.EqualFold(u.Host, base.Host) {
		return &entity.ConfigurationError{
			Message: fmt.Sprintf("uri %q must use the configured AgileCRM host %s://%s", uri, base.Scheme, base.Host),
		}
	}
	return nil
}

func omitsBody(method string) bool {
	m := strings.ToUpper(method)
	return m == http.MethodGet || m == http.MethodDelete
}
