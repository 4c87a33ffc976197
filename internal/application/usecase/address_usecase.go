package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// AddressUseCase direcciones de envío del usuario autenticado.
type AddressUseCase struct {
	repo repository.AddressRepository
}

// NewAddressUseCase construye el caso de uso.
func NewAddressUseCase(repo repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{repo: repo}
}

// Create agrega una dirección. La primera o la marcada isDefault pasa a ser la predeterminada.
func (uc *AddressUseCase) Create(ctx context.Context, p auth.Principal, in dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	existing, err := uc.repo.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	a := &entity.Address{
		ID:         uuid.New().String(),
		UserID:     p.UserID,
		Line1:      strings.TrimSpace(in.Line1),
		Line2:      strings.TrimSpace(in.Line2),
		City:       strings.TrimSpace(in.City),
		State:      strings.TrimSpace(in.State),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
		Phone:      strings.TrimSpace(in.Phone),
		IsDefault:  in.IsDefault || len(existing) == 0,
		CreatedAt:  time.Now().UTC(),
	}
	if a.IsDefault && len(existing) > 0 {
		if err := uc.repo.ClearDefault(ctx, p.UserID); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	out := toAddressResponse(a)
	return &out, nil
}

// List direcciones del usuario.
func (uc *AddressUseCase) List(ctx context.Context, p auth.Principal) ([]dto.AddressResponse, error) {
	list, err := uc.repo.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAddressResponse(a))
	}
	return out, nil
}

// Delete elimina una dirección propia.
func (uc *AddressUseCase) Delete(ctx context.Context, p auth.Principal, id string) error {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if !p.CanAccess(a.UserID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}
