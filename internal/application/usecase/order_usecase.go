package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// OrderUseCase pedidos: alta con precio congelado, consulta con control de dueño,
// cancelación y cambios de estado administrativos.
type OrderUseCase struct {
	repo      repository.OrderRepository
	addresses repository.AddressRepository
	users     repository.UserRepository
	tx        TxRunner
	receipts  ports.ReceiptPDFGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	addresses repository.AddressRepository,
	users repository.UserRepository,
	tx TxRunner,
	receipts ports.ReceiptPDFGenerator,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, addresses: addresses, users: users, tx: tx, receipts: receipts}
}

// Create registra un pedido del usuario autenticado.
func (uc *OrderUseCase) Create(ctx context.Context, p auth.Principal, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.create(ctx, p, in)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	return &out, nil
}

// create bloquea cada producto, congela su precio efectivo e inserta pedido y líneas en una transacción.
func (uc *OrderUseCase) create(ctx context.Context, p auth.Principal, in dto.CreateOrderRequest) (*entity.Order, error) {
	addr, err := uc.addresses.GetByID(ctx, in.AddressID)
	if err != nil {
		return nil, err
	}
	if addr == nil || addr.UserID != p.UserID {
		return nil, validation.FieldErr("addressId", "la dirección no existe")
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:            uuid.New().String(),
		UserID:        p.UserID,
		AddressID:     addr.ID,
		Status:        entity.OrderPending,
		PaymentStatus: entity.PaymentPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.tx.Run(ctx, func(r TxRepos) error {
		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(in.Items))
		for i, it := range in.Items {
			product, err := r.Products.GetForUpdate(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return validation.FieldErr(fmt.Sprintf("items[%d].productId", i), "el producto no existe")
			}
			if !product.InStock {
				return fmt.Errorf("%w: %s", domain.ErrOutOfStock, product.Name)
			}
			item := entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     order.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    it.Quantity,
				Price:       product.EffectivePrice(),
			}
			total = total.Add(item.Subtotal())
			items = append(items, item)
		}
		order.Items = items
		order.Total = total
		return r.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List pedidos: un ADMIN ve todos (filtro opcional por userId); el resto solo los propios.
func (uc *OrderUseCase) List(ctx context.Context, p auth.Principal, q dto.OrderListQuery) (*dto.ListResponse[dto.OrderResponse], error) {
	q.Normalize()
	f := repository.OrderFilter{Page: q.ToPage()}
	if p.IsAdmin() {
		f.UserID = q.UserID
	} else {
		f.UserID = p.UserID
	}
	if q.Status != "" {
		s := entity.OrderStatus(q.Status)
		f.Status = &s
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderResponse(o))
	}
	return &dto.ListResponse[dto.OrderResponse]{Items: items, Pagination: dto.NewPagination(q.PageQuery, total)}, nil
}

// GetByID obtiene un pedido propio (o cualquiera si es ADMIN).
func (uc *OrderUseCase) GetByID(ctx context.Context, p auth.Principal, id string) (*dto.OrderResponse, error) {
	order, err := uc.get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	return &out, nil
}

// Update: el dueño solo puede cancelar (y editar notas) mientras el pedido no esté cerrado;
// un ADMIN cambia estado y estado de pago.
func (uc *OrderUseCase) Update(ctx context.Context, p auth.Principal, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.get(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if !p.IsAdmin() {
		if in.PaymentStatus != nil {
			return nil, domain.ErrForbidden
		}
		if in.Status != nil && entity.OrderStatus(*in.Status) != entity.OrderCancelled {
			return nil, domain.ErrForbidden
		}
	}

	if in.Status != nil {
		next := entity.OrderStatus(*in.Status)
		if next != order.Status {
			if !order.Status.CanTransition(next) {
				return nil, domain.ErrInvalidTransition
			}
			order.Status = next
		}
	}
	if in.PaymentStatus != nil {
		order.PaymentStatus = entity.PaymentStatus(*in.PaymentStatus)
	}
	if in.Notes != nil {
		if order.Status.Terminal() && !p.IsAdmin() {
			return nil, domain.ErrInvalidTransition
		}
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	out := toOrderResponse(order)
	return &out, nil
}

// Delete elimina un pedido (solo ADMIN, verificado en el router).
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Receipt genera el comprobante PDF del pedido.
func (uc *OrderUseCase) Receipt(ctx context.Context, p auth.Principal, id string) ([]byte, error) {
	order, err := uc.get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	customer := ports.ReceiptCustomer{}
	user, err := uc.users.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		customer.Name = user.Name
		customer.Email = user.Email
	}
	if order.AddressID != "" {
		addr, err := uc.addresses.GetByID(ctx, order.AddressID)
		if err != nil {
			return nil, err
		}
		customer.Address = addr
	}
	return uc.receipts.Generate(order, customer)
}

func (uc *OrderUseCase) get(ctx context.Context, p auth.Principal, id string) (*entity.Order, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccess(order.UserID) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}
