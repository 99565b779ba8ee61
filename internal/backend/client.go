package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type tokenKey struct{}

// WithToken stores a per-request bearer credential in the context. The
// gateway's auth middleware puts the inbound Authorization value here so it
// rides the outbound backend call.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client talks to the auction backend's order API. All real business logic
// (bid acceptance, payment capture, payout, escrow transitions) lives on
// the other side of these calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type Option func(*Client)

// WithStaticToken sets a service credential used when the context carries
// no per-request token.
func WithStaticToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetProductOrder fetches the order+product aggregate keyed by product id.
func (c *Client) GetProductOrder(ctx context.Context, productID string) (*OrderView, error) {
	var view OrderView
	path := "/products/" + url.PathEscape(productID)
	if err := c.do(ctx, http.MethodGet, path, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// SubmitShipping posts the buyer's shipping address. The backend rejects
// the call unless the order is in SHIPPING_INFO_PENDING; nothing is
// pre-validated here.
func (c *Client) SubmitShipping(ctx context.Context, orderID string, info ShippingInfo) (*OrderView, error) {
	var view OrderView
	path := "/orders/" + url.PathEscape(orderID) + "/shipping"
	if err := c.do(ctx, http.MethodPost, path, info, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ConfirmShipment reports the seller's tracking data, requesting the
// SELLER_CONFIRMATION_PENDING -> IN_TRANSIT transition.
func (c *Client) ConfirmShipment(ctx context.Context, orderID string, info ShipmentInfo) (*OrderView, error) {
	var view OrderView
	path := "/orders/" + url.PathEscape(orderID) + "/confirm-shipment"
	if err := c.do(ctx, http.MethodPost, path, info, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ConfirmReceived requests the transition toward COMPLETED. The payout it
// triggers is entirely server-side.
func (c *Client) ConfirmReceived(ctx context.Context, orderID string) (*OrderView, error) {
	var view OrderView
	path := "/orders/" + url.PathEscape(orderID) + "/confirm-received"
	if err := c.do(ctx, http.MethodPost, path, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// CancelOrder requests cancellation of any non-terminal order.
func (c *Client) CancelOrder(ctx context.Context, orderID, reason string) (*OrderView, error) {
	var view OrderView
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	path := "/orders/" + url.PathEscape(orderID) + "/cancel"
	if err := c.do(ctx, http.MethodPost, path, body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) CreateRating(ctx context.Context, req RatingRequest) (*Rating, error) {
	var rating Rating
	if err := c.do(ctx, http.MethodPost, "/users/ratings", req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (c *Client) UpdateRating(ctx context.Context, ratingID string, req RatingUpdate) (*Rating, error) {
	var rating Rating
	path := "/users/ratings/" + url.PathEscape(ratingID)
	if err := c.do(ctx, http.MethodPatch, path, req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransport(op, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return c.decodeError(op, res)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

func (c *Client) bearerToken(ctx context.Context) string {
	if token := tokenFromContext(ctx); token != "" {
		return token
	}
	return c.token
}

// decodeError extracts the server's message from the {"error": "..."}
// payload; a generic fallback covers bodies that do not decode.
func (c *Client) decodeError(op string, res *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		zap.L().Debug("undecodable backend error payload",
			zap.String("op", op),
			zap.Int("status", res.StatusCode),
			zap.Error(err))
	}

	apiErr := newAPIError(res.StatusCode, payload.Error)
	return fmt.Errorf("%s: %w", op, apiErr)
}
