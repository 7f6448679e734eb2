// Package salonapi is the REST client for the salon marketplace backend.
// Every call carries the bearer credential found in the request context
// (see ports.WithBearer).
package salonapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"

	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/observability/metrics"
	"github.com/target/salonbook-ui/internal/ports"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultRolePath  = "role || user.role"
	defaultSalonPath = "salonId || salon_id || user.salonId || salon._id"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RolePath and SalonPath are JMESPath expressions evaluated against identity payloads.
	RolePath  string
	SalonPath string
	// HTTPClient overrides the underlying client (tests). Its Timeout is left untouched.
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// Client implements the backend-facing ports over resty.
type Client struct {
	rc        *resty.Client
	rolePath  string
	salonPath string
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

var (
	_ ports.Authenticator          = (*Client)(nil)
	_ ports.IdentityReader         = (*Client)(nil)
	_ ports.SalonRepository        = (*Client)(nil)
	_ ports.PortfolioRepository    = (*Client)(nil)
	_ ports.CatalogRepository      = (*Client)(nil)
	_ ports.FAQRepository          = (*Client)(nil)
	_ ports.ReviewReader           = (*Client)(nil)
	_ ports.RegistrationRepository = (*Client)(nil)
	_ ports.ImageUploader          = (*Client)(nil)
)

// New builds a Client. The identity paths are compiled up front so a bad
// expression fails at startup rather than on the first dashboard request.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, fmt.Errorf("salonapi: base URL is required")
	}
	rolePath := strings.TrimSpace(opts.RolePath)
	if rolePath == "" {
		rolePath = defaultRolePath
	}
	salonPath := strings.TrimSpace(opts.SalonPath)
	if salonPath == "" {
		salonPath = defaultSalonPath
	}
	for _, expr := range []string{rolePath, salonPath} {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, fmt.Errorf("salonapi: invalid identity path %q: %w", expr, err)
		}
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rc := resty.NewWithClient(hc).
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetPreRequestHook(attachBearer)

	return &Client{
		rc:        rc,
		rolePath:  rolePath,
		salonPath: salonPath,
		metrics:   opts.Metrics,
		logger:    logger.With("component", "salonapi"),
	}, nil
}

// attachBearer sets the Authorization header from the request context.
func attachBearer(_ *resty.Client, r *http.Request) error {
	tok, ok := ports.BearerFromContext(r.Context())
	if !ok {
		return nil
	}
	(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"}).SetAuthHeader(r)
	return nil
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("salon api: status %d", e.Status)
	}
	return fmt.Sprintf("salon api: status %d: %s", e.Status, e.Message)
}

// errorBody matches both {"message": "..."} and {"error": "..."} payloads.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b *errorBody) text() string {
	if b == nil {
		return ""
	}
	if strings.TrimSpace(b.Message) != "" {
		return b.Message
	}
	return b.Error
}

// call describes one backend request.
type call struct {
	op     string
	method string
	path   string
	params map[string]string
	query  map[string]string
	body   any
	out    any
	// multipart, when set, prepares a multipart body instead of JSON.
	multipart func(*resty.Request)
}

func (c *Client) do(ctx context.Context, in call) error {
	start := time.Now()

	eb := &errorBody{}
	req := c.rc.R().SetContext(ctx).SetError(eb)
	if len(in.params) > 0 {
		req.SetPathParams(in.params)
	}
	if len(in.query) > 0 {
		req.SetQueryParams(in.query)
	}
	switch {
	case in.multipart != nil:
		in.multipart(req)
	case in.body != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(in.body)
	}
	if in.out != nil {
		req.SetResult(in.out)
	}

	resp, err := req.Execute(in.method, in.path)

	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	switch {
	case err != nil:
		err = apperrors.MapTransportError(err)
	case resp.IsError():
		apiErr := &APIError{Status: status, Message: strings.TrimSpace(eb.text())}
		err = apperrors.FromStatus(status, apiErr.Message, apiErr)
	}

	c.metrics.ObserveUpstream(metrics.UpstreamCall{
		Op:       in.op,
		Method:   in.method,
		Status:   status,
		Duration: time.Since(start),
		Err:      err,
	})

	if err != nil {
		c.logger.DebugContext(ctx, "salon api call failed",
			"op", in.op, "method", in.method, "status", status, "error", err)
		return err
	}
	return nil
}

func salonParams(salonID string, kv ...string) map[string]string {
	p := map[string]string{"salonId": salonID}
	for i := 0; i+1 < len(kv); i += 2 {
		p[kv[i]] = kv[i+1]
	}
	return p
}
