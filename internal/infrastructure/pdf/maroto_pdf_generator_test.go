package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/infrastructure/pdf"
)

func TestReceiptGenerator_Generate(t *testing.T) {
	order := &entity.Order{
		ID:            "5f1c2a9e-1111-4111-8111-111111111111",
		Status:        entity.OrderPending,
		PaymentStatus: entity.PaymentPending,
		Total:         decimal.NewFromInt(1199),
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{ProductName: "Sofá nórdico", Quantity: 1, Price: decimal.NewFromInt(900)},
			{ProductName: "Lámpara de pie", Quantity: 2, Price: decimal.RequireFromString("149.50")},
		},
	}
	out, err := pdf.NewReceiptGenerator("").Generate(order, ports.ReceiptCustomer{
		Name:    "Ana",
		Email:   "ana@example.com",
		Address: &entity.Address{Line1: "Calle 1", City: "Bogotá"},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestReceiptGenerator_NilOrder(t *testing.T) {
	_, err := pdf.NewReceiptGenerator("Casa").Generate(nil, ports.ReceiptCustomer{})
	assert.Error(t, err)
}
