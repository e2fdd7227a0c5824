// Package mercadopago implements the payment preference gateway against the
// Mercado Pago checkout API.
package mercadopago

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"tuikigai/config"
	"tuikigai/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.mercadopago.com"

// client implements service.PreferenceGateway by calling the Mercado Pago
// checkout/preferences and v1/payments endpoints over HTTPS.
type client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// preferenceRequest is the wire shape of POST /checkout/preferences.
type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	Payer             preferencePayer  `json:"payer"`
	BackURLs          preferenceURLs   `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
	ExternalReference string           `json:"external_reference"`
}

type preferenceItem struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CurrencyID  string          `json:"currency_id"`
}

type preferencePayer struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type preferenceURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// preferenceResponse is the wire shape of the gateway's answer. Absence of the
// id or init_point is a hard failure.
type preferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
	Message          string `json:"message"`
}

// paymentResponse is the wire shape of GET /v1/payments/{id}.
type paymentResponse struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	StatusDetail      string      `json:"status_detail"`
	ExternalReference string      `json:"external_reference"`
	Message           string      `json:"message"`
}

// NewClient creates a Mercado Pago gateway client from configuration. The HTTP
// client carries the configured timeout so a stalled gateway call fails the
// submission instead of blocking the user indefinitely.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.PreferenceGateway, error) {
	if cfg.MercadoPago == nil {
		return nil, errors.New("mercadoPago config section is required")
	}

	baseURL := defaultBaseURL
	if cfg.MercadoPago.BaseURL != "" {
		baseURL = cfg.MercadoPago.BaseURL
	}

	return &client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: cfg.MercadoPago.AccessToken,
		httpClient: &http.Client{
			Timeout: cfg.MercadoPago.Timeout,
		},
		logger: logger,
	}, nil
}

// CreatePreference registers the single-item cart and returns the redirect target.
func (c *client) CreatePreference(ctx context.Context, order *service.PreferenceOrder) (*service.PaymentPreference, error) {
	payload := preferenceRequest{
		Items: []preferenceItem{{
			Title:       order.Title,
			Description: order.Description,
			Quantity:    1,
			UnitPrice:   order.Amount,
			CurrencyID:  order.Currency,
		}},
		Payer: preferencePayer{
			Email: order.PayerEmail,
			Name:  order.PayerName,
		},
		BackURLs: preferenceURLs{
			Success: order.BackURLs.Success,
			Failure: order.BackURLs.Failure,
			Pending: order.BackURLs.Pending,
		},
		AutoReturn:        "approved",
		ExternalReference: order.ExternalReference,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "preference request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read preference response")
	}

	var decoded preferenceResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the gateway's own message when it sends one.
		if err := json.Unmarshal(respBody, &decoded); err == nil && decoded.Message != "" {
			return nil, errors.Errorf("gateway rejected preference: %s", decoded.Message)
		}

		return nil, errors.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errors.Wrap(err, "malformed preference response")
	}

	if decoded.ID == "" || decoded.InitPoint == "" {
		return nil, errors.New("preference response missing id or init_point")
	}

	c.logger.Info("payment preference created",
		slog.String("preference_id", decoded.ID),
		slog.String("external_reference", order.ExternalReference),
	)

	return &service.PaymentPreference{
		ID:               decoded.ID,
		InitPoint:        decoded.InitPoint,
		SandboxInitPoint: decoded.SandboxInitPoint,
	}, nil
}

// GetPayment resolves a provider payment id into its status and reference.
func (c *client) GetPayment(ctx context.Context, paymentID string) (*service.PaymentInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "payment lookup failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read payment response")
	}

	var decoded paymentResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if err := json.Unmarshal(respBody, &decoded); err == nil && decoded.Message != "" {
			return nil, errors.Errorf("gateway rejected payment lookup: %s", decoded.Message)
		}

		return nil, errors.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errors.Wrap(err, "malformed payment response")
	}

	if decoded.Status == "" {
		return nil, errors.New("payment response missing status")
	}

	return &service.PaymentInfo{
		PaymentID:         decoded.ID.String(),
		Status:            decoded.Status,
		StatusDetail:      decoded.StatusDetail,
		ExternalReference: decoded.ExternalReference,
	}, nil
}
