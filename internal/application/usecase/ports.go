package usecase

import (
	"context"

	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Categories    repository.CategoryRepository
	Products      repository.ProductRepository
	Orders        repository.OrderRepository
	Consultations repository.ConsultationRepository
	Reviews       repository.ReviewRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD: Commit si fn retorna nil, Rollback si no.
// Las escrituras de varios pasos (pedido + líneas, producto + categorías, cambio de padre,
// verificación de cupo + reserva) pasan por aquí.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
