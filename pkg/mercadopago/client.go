package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasferreira/vitrine-backend/pkg/config"
	pkgerrors "github.com/lucasferreira/vitrine-backend/pkg/errors"
	"github.com/lucasferreira/vitrine-backend/pkg/logger"
)

var (
	errAccessTokenRequired = errors.New("mercadopago access token is required")
	errLoggerRequired      = errors.New("mercadopago logger is required")
)

// Client exposes the MercadoPago payment primitives with centralized auth,
// logging, and error mapping. It never retries; callers own retry policy.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *logger.Logger
}

// APIError carries the provider's error payload for a non-2xx response.
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
	ErrorCode  string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mercadopago: %d %s (%s)", e.StatusCode, e.Message, e.ErrorCode)
}

// NewClient initializes the MercadoPago wrapper and validates the credentials.
func NewClient(ctx context.Context, cfg config.MercadoPagoConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	accessToken := strings.TrimSpace(cfg.AccessToken)
	if accessToken == "" {
		return nil, errAccessTokenRequired
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.mercadopago.com"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		accessToken: accessToken,
		logger:      logg,
	}

	logg.Info(ctx, "mercadopago client initialized")
	return c, nil
}

// GetPayment fetches the current state of a payment by its gateway id. The
// raw response body is returned alongside the decoded payment so callers can
// retain it for audit.
func (c *Client) GetPayment(ctx context.Context, id string) (*Payment, json.RawMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "payment id is required")
	}
	var payment Payment
	raw, err := c.do(ctx, http.MethodGet, "/v1/payments/"+id, nil, &payment)
	if err != nil {
		return nil, nil, err
	}
	return &payment, raw, nil
}

// CreatePayment submits a direct payment request.
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*Payment, json.RawMessage, error) {
	var payment Payment
	raw, err := c.do(ctx, http.MethodPost, "/v1/payments", req, &payment)
	if err != nil {
		return nil, nil, err
	}
	return &payment, raw, nil
}

// CreatePreference opens a redirect-checkout session and returns the
// init_point URL the buyer should be sent to.
func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	var preference Preference
	if _, err := c.do(ctx, http.MethodPost, "/checkout/preferences", req, &preference); err != nil {
		return nil, err
	}
	return &preference, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, dest any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "calling mercadopago")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading mercadopago response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.mapAPIError(resp.StatusCode, raw)
	}

	if dest != nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding mercadopago response")
		}
	}
	return raw, nil
}

func (c *Client) mapAPIError(status int, raw []byte) error {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}
	if len(raw) > 0 {
		// Best effort: the provider's error body is {message, error, status}.
		_ = json.Unmarshal(raw, apiErr)
		apiErr.StatusCode = status
	}

	if status == http.StatusNotFound {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, apiErr, "payment not found at gateway")
	}
	return pkgerrors.Wrap(pkgerrors.CodeGateway, apiErr, "mercadopago request rejected").
		WithDetails(map[string]any{"status": status, "message": apiErr.Message})
}
