package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/infrastructure/payment"
)

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "order-ord-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, r.ParseForm())
		form = map[string]string{
			"amount":             r.PostForm.Get("amount"),
			"currency":           r.PostForm.Get("currency"),
			"metadata[order_id]": r.PostForm.Get("metadata[order_id]"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc","amount":119900,"currency":"usd"}`))
	}))
	defer srv.Close()

	gw := payment.NewStripeGateway("sk_test_123", srv.URL)
	pi, err := gw.CreatePaymentIntent(context.Background(), decimal.RequireFromString("1199.00"), "USD", map[string]string{"order_id": "ord-1"})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", pi.ID)
	assert.Equal(t, "pi_123_secret_abc", pi.ClientSecret)
	assert.Equal(t, "usd", pi.Currency)
	assert.Equal(t, "119900", form["amount"])
	assert.Equal(t, "usd", form["currency"])
	assert.Equal(t, "ord-1", form["metadata[order_id]"])
}

func TestStripeGateway_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	_, err := payment.NewStripeGateway("sk_test_123", srv.URL).
		CreatePaymentIntent(context.Background(), decimal.NewFromInt(10), "usd", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card_error")
}

func TestStripeGateway_RequiresKeyAndAmount(t *testing.T) {
	_, err := payment.NewStripeGateway("", "").CreatePaymentIntent(context.Background(), decimal.NewFromInt(10), "usd", nil)
	assert.Error(t, err)
	_, err = payment.NewStripeGateway("sk", "").CreatePaymentIntent(context.Background(), decimal.Zero, "usd", nil)
	assert.Error(t, err)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(119900), payment.MinorUnits(decimal.NewFromInt(1199)))
	assert.Equal(t, int64(14950), payment.MinorUnits(decimal.RequireFromString("149.50")))
	assert.Equal(t, int64(1), payment.MinorUnits(decimal.RequireFromString("0.005")))
}

func TestLocalGateway(t *testing.T) {
	gw := payment.LocalGateway{}
	a, err := gw.CreatePaymentIntent(context.Background(), decimal.NewFromInt(5), "USD", map[string]string{"order_id": "ab-cd"})
	require.NoError(t, err)
	b, err := gw.CreatePaymentIntent(context.Background(), decimal.NewFromInt(5), "USD", map[string]string{"order_id": "ab-cd"})
	require.NoError(t, err)
	assert.Equal(t, "pi_local_abcd", a.ID)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "usd", a.Currency)
}
