package vendas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Colors for terminal output
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

// Client handles API requests against the sales backend.
type Client struct {
	Config     *Config
	HTTPClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new API client.
func NewClient(config *Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		Config: config,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Request makes an API request. When out is non-nil the JSON response body
// is decoded into it.
func (c *Client) Request(method, endpoint string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	fullURL := strings.TrimRight(c.Config.APIURL, "/") + endpoint
	req, err := http.NewRequest(method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Config.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.Config.APIToken)
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Error("api error",
			zap.Int("status", resp.StatusCode),
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
		)
		return fmt.Errorf("API error: %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %s", string(respBody))
		}
	}

	return nil
}

// ListSales fetches every sale visible to the session.
func (c *Client) ListSales() ([]Sale, error) {
	var sales []Sale
	if err := c.Request(http.MethodGet, "/sales", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// GetSale fetches one sale by id.
func (c *Client) GetSale(id string) (*Sale, error) {
	var sale Sale
	if err := c.Request(http.MethodGet, "/sales/"+url.PathEscape(id), nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// UpdateSale sends the complete record to the backend.
func (c *Client) UpdateSale(id string, payload UpdatePayload) error {
	return c.Request(http.MethodPut, "/sales/"+url.PathEscape(id), payload, nil)
}

// DeleteSale removes one sale by id.
func (c *Client) DeleteSale(id string) error {
	return c.Request(http.MethodDelete, "/sales/"+url.PathEscape(id), nil, nil)
}

// CmdPing tests the connection
func (c *Client) CmdPing() error {
	fmt.Printf("%sTesting connection to the sales API...%s\n", Blue, Reset)

	if err := c.Request(http.MethodGet, "/ping", nil, nil); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Printf("%s✓ Connection successful%s\n", Green, Reset)
	fmt.Printf("  URL: %s%s%s\n", Cyan, c.Config.APIURL, Reset)
	fmt.Printf("  Signed in as: %s%s%s (%s)\n", Yellow, c.Config.Session.Name, Reset, c.Config.Session.Role)
	return nil
}

// CmdConfig shows current configuration
func (c *Client) CmdConfig() error {
	fmt.Printf("%sCurrent configuration:%s\n", Blue, Reset)
	fmt.Printf("  API URL: %s\n", c.Config.APIURL)
	if c.Config.APIToken != "" {
		fmt.Printf("  API Token: ****\n")
	} else {
		fmt.Printf("  API Token: %snot configured%s\n", Yellow, Reset)
	}
	fmt.Printf("  User: %s (%s)\n", c.Config.Session.Name, c.Config.Session.ID)
	fmt.Printf("  Employee ID: %s\n", c.Config.Session.EmployeeID)
	fmt.Printf("  Role: %s\n", c.Config.Session.Role)
	fmt.Printf("  Timezone: %s\n", c.Config.Timezone)
	if c.Config.LogFile != "" {
		fmt.Printf("  Log file: %s (%s)\n", c.Config.LogFile, c.Config.LogLevel)
	} else {
		fmt.Printf("  Log file: %snot configured%s\n", Yellow, Reset)
	}
	return nil
}
