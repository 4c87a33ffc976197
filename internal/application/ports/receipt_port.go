package ports

import (
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// ReceiptCustomer datos del comprador impresos en el comprobante.
type ReceiptCustomer struct {
	Name    string
	Email   string
	Address *entity.Address
}

// ReceiptPDFGenerator genera el comprobante de un pedido en PDF.
type ReceiptPDFGenerator interface {
	Generate(order *entity.Order, customer ReceiptCustomer) ([]byte, error)
}
