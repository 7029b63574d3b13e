package daikinhttp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	pathReboot         = "common/reboot"
	pathBasicInfo      = "common/basic_info"
	pathSensorInfo     = "aircon/get_sensor_info"
	pathControlInfo    = "aircon/get_control_info"
	pathSetControlInfo = "aircon/set_control_info"

	terminalUUIDHeader = "X-Daikin-uuid"
)

// Client talks to one appliance. It only holds configuration that is fixed
// at construction, so it is safe for concurrent use. Calls are not
// coordinated though: two concurrent SetControlInfo calls each read then
// write, and the appliance keeps whichever write lands last.
type Client struct {
	host      string
	port      int
	baseURL   string
	headers   map[string]string
	transport Transport
	logger    Logger
}

type Config struct {
	Logger       Logger
	Transport    Transport
	HTTPClient   *http.Client
	Timeout      time.Duration
	TLSConfig    *tls.Config
	TerminalUUID *string
}

type Option func(*Config)

// WithLogger sets the logger (silent by default)
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithTransport replaces the HTTP transport, mostly useful in tests.
func WithTransport(t Transport) Option {
	return func(c *Config) {
		c.Transport = t
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithTLS switches to https, as needed by BRP072C adapters.
func WithTLS(cfg *tls.Config) Option {
	return func(c *Config) {
		c.TLSConfig = cfg
	}
}

// WithTerminalUUID sends the X-Daikin-uuid header. An empty id generates a random one.
func WithTerminalUUID(id string) Option {
	return func(c *Config) {
		c.TerminalUUID = &id
	}
}

// NewClient creates a client for host, which may carry a ":port" suffix.
func NewClient(host string, options ...Option) (*Client, error) {
	config := &Config{}
	for _, opt := range options {
		opt(config)
	}

	host = strings.TrimSpace(host)
	if host == "" {
		return nil, NewConfigurationError("appliance host is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = NoOpLogger{}
	}

	ip, port := extractIPPort(host)
	scheme := "http"
	if config.TLSConfig != nil {
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s", scheme, ip)
	if port != 0 {
		baseURL = fmt.Sprintf("%s://%s:%d", scheme, ip, port)
	}

	headers := make(map[string]string)
	if config.TerminalUUID != nil {
		id := *config.TerminalUUID
		if id == "" {
			id = strings.ReplaceAll(uuid.NewString(), "-", "")
		}
		headers[terminalUUIDHeader] = id
	}

	transport := config.Transport
	if transport == nil {
		httpClient := config.HTTPClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: 30 * time.Second}
			if config.Timeout > 0 {
				httpClient.Timeout = config.Timeout
			}
			if config.TLSConfig != nil {
				httpClient.Transport = &http.Transport{TLSClientConfig: config.TLSConfig}
			}
		}
		transport = NewHTTPTransport(baseURL, httpClient, logger)
	}

	return &Client{
		host:      ip,
		port:      port,
		baseURL:   baseURL,
		headers:   headers,
		transport: transport,
		logger:    logger,
	}, nil
}

func (c *Client) Host() string {
	return c.host
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request and decodes the response.
func (c *Client) do(ctx context.Context, method, path string, params RawRecord) (RawRecord, error) {
	if method != http.MethodGet {
		return nil, NewUnsupportedMethodError(method)
	}

	body, err := c.transport.Get(ctx, path, params, c.headers)
	if err != nil {
		return nil, err
	}

	record, err := DecodeResponse(body)
	if err != nil {
		c.logger.Warn("Appliance returned an error response", "path", path, "error", err)
		return nil, err
	}
	return record, nil
}

func (c *Client) get(ctx context.Context, path string, params RawRecord) (RawRecord, error) {
	return c.do(ctx, http.MethodGet, path, params)
}

// Reboot asks the appliance to restart. The response carries nothing of interest.
func (c *Client) Reboot(ctx context.Context) error {
	c.logger.Info("Rebooting appliance", "host", c.host)
	if _, err := c.get(ctx, pathReboot, nil); err != nil {
		return fmt.Errorf("failed to reboot: %w", err)
	}
	return nil
}

func (c *Client) GetGeneralInfo(ctx context.Context) (*GeneralInfo, error) {
	raw, err := c.get(ctx, pathBasicInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get basic info: %w", err)
	}
	info := ParseGeneralInfo(raw)
	return &info, nil
}

func (c *Client) GetSensorInfo(ctx context.Context) (*SensorInfo, error) {
	raw, err := c.get(ctx, pathSensorInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get sensor info: %w", err)
	}
	info := ParseSensorInfo(raw)
	return &info, nil
}

// GetRawControlInfo returns the control state exactly as sent by the appliance.
func (c *Client) GetRawControlInfo(ctx context.Context) (RawRecord, error) {
	raw, err := c.get(ctx, pathControlInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get control info: %w", err)
	}
	return raw, nil
}

func (c *Client) GetControlInfo(ctx context.Context) (*ControlInfo, error) {
	raw, err := c.GetRawControlInfo(ctx)
	if err != nil {
		return nil, err
	}
	info := ParseControlInfo(raw)
	return &info, nil
}

// extractIPPort extracts IP address and port
func extractIPPort(deviceID string) (string, int) {
	portRegex := regexp.MustCompile(`^(.+):(\d+)$`)
	if matches := portRegex.FindStringSubmatch(deviceID); matches != nil {
		port, err := strconv.Atoi(matches[2])
		if err != nil {
			return deviceID, 0
		}
		return matches[1], port
	}
	return deviceID, 0
}
