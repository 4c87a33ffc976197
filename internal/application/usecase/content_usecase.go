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
	"github.com/jhoicas/Interiores-api/pkg/slug"
)

func isStaff(p *auth.Principal) bool {
	return p != nil && p.HasRole(entity.RoleAdmin, entity.RoleDesigner)
}

func contentFilter(q dto.ContentListQuery) repository.ContentFilter {
	return repository.ContentFilter{
		Category: strings.TrimSpace(q.Category),
		Tag:      strings.TrimSpace(q.Tag),
		Search:   strings.TrimSpace(q.Search),
		Featured: parseBoolFilter(q.Featured),
		Page:     q.ToPage(),
	}
}

// contentSlug título legible más un prefijo del ID.
func contentSlug(title, id string) string {
	return slug.Make(title) + "-" + strings.SplitN(id, "-", 2)[0]
}

// DesignIdeaUseCase ideas de diseño. Los borradores solo los ve el equipo (ADMIN, DESIGNER).
type DesignIdeaUseCase struct {
	repo repository.DesignIdeaRepository
}

// NewDesignIdeaUseCase construye el caso de uso.
func NewDesignIdeaUseCase(repo repository.DesignIdeaRepository) *DesignIdeaUseCase {
	return &DesignIdeaUseCase{repo: repo}
}

func (uc *DesignIdeaUseCase) Create(ctx context.Context, p auth.Principal, in dto.CreateDesignIdeaRequest) (*dto.DesignIdeaResponse, error) {
	now := time.Now().UTC()
	id := uuid.New().String()
	idea := &entity.DesignIdea{
		ID:         id,
		Title:      strings.TrimSpace(in.Title),
		Slug:       contentSlug(in.Title, id),
		Summary:    in.Summary,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		Images:     in.Images,
		Category:   strings.TrimSpace(in.Category),
		Tags:       dedupe(in.Tags),
		AuthorID:   p.UserID,
		Published:  in.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, idea); err != nil {
		return nil, err
	}
	out := toDesignIdeaResponse(idea)
	return &out, nil
}

// GetByID p es nil en peticiones anónimas.
func (uc *DesignIdeaUseCase) GetByID(ctx context.Context, p *auth.Principal, id string) (*dto.DesignIdeaResponse, error) {
	idea, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea == nil || (!idea.Published && !isStaff(p)) {
		return nil, domain.ErrNotFound
	}
	out := toDesignIdeaResponse(idea)
	return &out, nil
}

func (uc *DesignIdeaUseCase) List(ctx context.Context, p *auth.Principal, q dto.ContentListQuery) (*dto.ListResponse[dto.DesignIdeaResponse], error) {
	q.Normalize()
	f := contentFilter(q)
	f.Featured = nil
	if !isStaff(p) {
		published := true
		f.Published = &published
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DesignIdeaResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toDesignIdeaResponse(d))
	}
	return &dto.ListResponse[dto.DesignIdeaResponse]{Items: items, Pagination: dto.NewPagination(q.PageQuery, total)}, nil
}

func (uc *DesignIdeaUseCase) Update(ctx context.Context, id string, in dto.UpdateDesignIdeaRequest) (*dto.DesignIdeaResponse, error) {
	idea, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		idea.Title = strings.TrimSpace(*in.Title)
		idea.Slug = contentSlug(idea.Title, idea.ID)
	}
	if in.Summary != nil {
		idea.Summary = *in.Summary
	}
	if in.Content != nil {
		idea.Content = *in.Content
	}
	if in.CoverImage != nil {
		idea.CoverImage = *in.CoverImage
	}
	if in.Images != nil {
		idea.Images = *in.Images
	}
	if in.Category != nil {
		idea.Category = strings.TrimSpace(*in.Category)
	}
	if in.Tags != nil {
		idea.Tags = dedupe(*in.Tags)
	}
	if in.Published != nil {
		idea.Published = *in.Published
	}
	idea.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, idea); err != nil {
		return nil, err
	}
	out := toDesignIdeaResponse(idea)
	return &out, nil
}

func (uc *DesignIdeaUseCase) Delete(ctx context.Context, id string) error {
	idea, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if idea == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// PortfolioUseCase proyectos del portafolio (públicos; escritura para ADMIN y DESIGNER).
type PortfolioUseCase struct {
	repo repository.PortfolioRepository
}

// NewPortfolioUseCase construye el caso de uso.
func NewPortfolioUseCase(repo repository.PortfolioRepository) *PortfolioUseCase {
	return &PortfolioUseCase{repo: repo}
}

func (uc *PortfolioUseCase) Create(ctx context.Context, in dto.CreatePortfolioRequest) (*dto.PortfolioResponse, error) {
	now := time.Now().UTC()
	id := uuid.New().String()
	project := &entity.PortfolioProject{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Slug:        contentSlug(in.Title, id),
		Description: in.Description,
		Client:      strings.TrimSpace(in.Client),
		Location:    strings.TrimSpace(in.Location),
		Category:    strings.TrimSpace(in.Category),
		Tags:        dedupe(in.Tags),
		Images:      in.Images,
		Featured:    in.Featured,
		CompletedAt: in.CompletedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	out := toPortfolioResponse(project)
	return &out, nil
}

func (uc *PortfolioUseCase) GetByID(ctx context.Context, id string) (*dto.PortfolioResponse, error) {
	project, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	out := toPortfolioResponse(project)
	return &out, nil
}

func (uc *PortfolioUseCase) List(ctx context.Context, q dto.ContentListQuery) (*dto.ListResponse[dto.PortfolioResponse], error) {
	q.Normalize()
	list, total, err := uc.repo.List(ctx, contentFilter(q))
	if err != nil {
		return nil, err
	}
	items := make([]dto.PortfolioResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPortfolioResponse(p))
	}
	return &dto.ListResponse[dto.PortfolioResponse]{Items: items, Pagination: dto.NewPagination(q.PageQuery, total)}, nil
}

func (uc *PortfolioUseCase) Update(ctx context.Context, id string, in dto.UpdatePortfolioRequest) (*dto.PortfolioResponse, error) {
	project, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		project.Title = strings.TrimSpace(*in.Title)
		project.Slug = contentSlug(project.Title, project.ID)
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Client != nil {
		project.Client = strings.TrimSpace(*in.Client)
	}
	if in.Location != nil {
		project.Location = strings.TrimSpace(*in.Location)
	}
	if in.Category != nil {
		project.Category = strings.TrimSpace(*in.Category)
	}
	if in.Tags != nil {
		project.Tags = dedupe(*in.Tags)
	}
	if in.Images != nil {
		project.Images = *in.Images
	}
	if in.Featured != nil {
		project.Featured = *in.Featured
	}
	if in.CompletedAt.Set {
		project.CompletedAt = in.CompletedAt.Value
	}
	project.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	out := toPortfolioResponse(project)
	return &out, nil
}

func (uc *PortfolioUseCase) Delete(ctx context.Context, id string) error {
	project, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
