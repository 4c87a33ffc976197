package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
	"github.com/jhoicas/Interiores-api/internal/domain/repository"
)

// UserUseCase administración de cuentas.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create alta de un usuario con rol explícito (solo ADMIN).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role, _ := entity.ParseRole(in.Role)
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Image:        in.Image,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetByID obtiene un usuario: el propio o cualquiera si es ADMIN.
func (uc *UserUseCase) GetByID(ctx context.Context, p auth.Principal, id string) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// List usuarios filtrados por rol y texto (solo ADMIN).
func (uc *UserUseCase) List(ctx context.Context, q dto.UserListQuery) (*dto.ListResponse[dto.UserResponse], error) {
	q.Normalize()
	f := repository.UserFilter{Search: strings.TrimSpace(q.Search), Page: q.ToPage()}
	if role, ok := entity.ParseRole(q.Role); ok {
		f.Role = &role
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.ListResponse[dto.UserResponse]{Items: items, Pagination: dto.NewPagination(q.PageQuery, total)}, nil
}

// Update modifica el perfil. Cambiar el rol requiere ADMIN.
func (uc *UserUseCase) Update(ctx context.Context, p auth.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		role, _ := entity.ParseRole(*in.Role)
		if role != user.Role {
			if !p.IsAdmin() {
				return nil, domain.ErrForbidden
			}
			user.Role = role
		}
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Image != nil {
		user.Image = *in.Image
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete elimina una cuenta (solo ADMIN). Un ADMIN no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, p auth.Principal, id string) error {
	if p.UserID == id {
		return domain.ErrInvalidTransition
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UserUseCase) get(ctx context.Context, p auth.Principal, id string) (*entity.User, error) {
	if !p.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, domain.ErrDuplicate)
}
