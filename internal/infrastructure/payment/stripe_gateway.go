// Package payment implementa ports.PaymentGateway.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/application/ports"
)

// StripeGateway crea PaymentIntents contra la API REST de Stripe (o un servicio compatible).
// Usa net/http directamente, sin el SDK.
type StripeGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ ports.PaymentGateway = (*StripeGateway)(nil)

// NewStripeGateway construye el adaptador. baseURL vacío = https://api.stripe.com.
func NewStripeGateway(apiKey, baseURL string) *StripeGateway {
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}
	return &StripeGateway{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			// El use case impone además su propio context.WithTimeout.
			Timeout: 20 * time.Second,
		},
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Error        *struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent registra la intención de cobro por amount (unidades de la moneda).
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*ports.PaymentIntent, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("payment: PAYMENT_API_KEY no configurado")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment: monto inválido %s", amount.String())
	}
	currency = strings.ToLower(currency)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(MinorUnits(amount), 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		form.Set("metadata["+k+"]", metadata[k])
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("payment: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if id := metadata["order_id"]; id != "" {
		req.Header.Set("Idempotency-Key", "order-"+id)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("payment: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("payment: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("payment: leer respuesta: %w", err)
	}

	var out intentResponse
	if resp.StatusCode != http.StatusOK {
		if jsonErr := json.Unmarshal(raw, &out); jsonErr == nil && out.Error != nil {
			return nil, fmt.Errorf("payment: pasarela (%s): %s", out.Error.Type, out.Error.Message)
		}
		return nil, fmt.Errorf("payment: pasarela HTTP %d", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("payment: deserializar respuesta: %w", err)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("payment: respuesta sin id")
	}
	return &ports.PaymentIntent{
		ID:           out.ID,
		ClientSecret: out.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// MinorUnits convierte a centavos redondeando a la unidad: 1199.505 → 119951.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
