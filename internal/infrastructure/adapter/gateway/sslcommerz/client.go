package sslcommerz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	coreport "github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/core"
	"github.com/shoisob2004037/Hall-Food-Token-Booking/internal/domain/port/gateway"
)

// Gateway base URLs
const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"
)

// API paths on the gateway host
const (
	initiatePath = "/gwprocess/v4/api.php"
	validatePath = "/validator/api/validationserverAPI.php"
	queryPath    = "/validator/api/merchantTransIDvalidationAPI.php"
)

// Client implements the PaymentGateway interface against the SSLCommerz
// hosted checkout API
type Client struct {
	storeID       string
	storePassword string
	baseURL       string
	httpClient    *http.Client
	logger        coreport.Logger
}

// Config carries the credentials and mode for the gateway client
type Config struct {
	StoreID       string
	StorePassword string
	Sandbox       bool
}

// NewClient creates a new SSLCommerz client
func NewClient(cfg Config, logger coreport.Logger) *Client {
	baseURL := liveBaseURL
	if cfg.Sandbox {
		baseURL = sandboxBaseURL
	}

	return &Client{
		storeID:       cfg.StoreID,
		storePassword: cfg.StorePassword,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        logger,
	}
}

// initiateResponse is the gateway's answer to a session initiation
type initiateResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
	SessionKey     string `json:"sessionkey"`
}

// InitiatePayment opens a hosted checkout session and returns the redirect URL
func (c *Client) InitiatePayment(ctx context.Context, req gateway.InitiateRequest) (*gateway.PaymentSession, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePassword)
	form.Set("total_amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TransactionID)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("ipn_url", req.IPNURL)
	form.Set("shipping_method", "NO")
	form.Set("product_name", "Balance Top-Up")
	form.Set("product_category", "Service")
	form.Set("product_profile", "non-physical-goods")
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_phone", req.CustomerPhone)
	form.Set("cus_add1", "University Hall")
	form.Set("cus_city", "Rajshahi")
	form.Set("cus_country", "Bangladesh")
	form.Set("value_a", req.AccountRef)
	form.Set("value_b", req.TopUpRef)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+initiatePath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp initiateResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, fmt.Errorf("gateway initiation request failed: %w", err)
	}

	if !strings.EqualFold(resp.Status, "SUCCESS") || resp.GatewayPageURL == "" {
		c.logger.Warn("Gateway refused payment session", map[string]any{
			"transactionId": req.TransactionID,
			"status":        resp.Status,
			"reason":        resp.FailedReason,
		})
		return nil, fmt.Errorf("gateway refused payment session: %s", resp.FailedReason)
	}

	return &gateway.PaymentSession{GatewayURL: resp.GatewayPageURL}, nil
}

// validateResponse is the gateway's answer to a server-to-server validation
type validateResponse struct {
	Status   string `json:"status"`
	TranID   string `json:"tran_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency_type"`
}

// ValidatePayment re-validates a payment by the gateway-issued validation id
func (c *Client) ValidatePayment(ctx context.Context, validationID string) (*gateway.ValidationResult, error) {
	query := url.Values{}
	query.Set("val_id", validationID)
	query.Set("store_id", c.storeID)
	query.Set("store_passwd", c.storePassword)
	query.Set("format", "json")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+validatePath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp validateResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, fmt.Errorf("gateway validation request failed: %w", err)
	}

	return &gateway.ValidationResult{
		Status:        resp.Status,
		TransactionID: resp.TranID,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
	}, nil
}

// QueryTransaction returns the gateway-side view of a transaction
func (c *Client) QueryTransaction(ctx context.Context, transactionID string) (map[string]any, error) {
	query := url.Values{}
	query.Set("tran_id", transactionID)
	query.Set("store_id", c.storeID)
	query.Set("store_passwd", c.storePassword)
	query.Set("format", "json")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+queryPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp map[string]any
	if err := c.do(httpReq, &resp); err != nil {
		return nil, fmt.Errorf("gateway query request failed: %w", err)
	}

	// The query API nests per-attempt details under "element"; surface the
	// latest attempt's status at the top level for callers.
	if elements, ok := resp["element"].([]any); ok && len(elements) > 0 {
		if latest, ok := elements[len(elements)-1].(map[string]any); ok {
			if status, ok := latest["status"].(string); ok {
				resp["status"] = status
			}
		}
	}

	return resp, nil
}

// do executes a request and decodes the JSON response body into out
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}
