package usecase

import (
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAddressResponse(a *entity.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	out := dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		ParentID:    c.ParentID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, ch := range c.Children {
		out.Children = append(out.Children, toCategoryResponse(ch))
	}
	for _, p := range c.Products {
		out.Products = append(out.Products, toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		SalePrice:   p.SalePrice,
		InStock:     p.InStock,
		Featured:    p.Featured,
		Images:      orEmpty(p.Images),
		Dimensions:  p.Dimensions,
		Materials:   orEmpty(p.Materials),
		Colors:      orEmpty(p.Colors),
		CategoryIDs: orEmpty(p.CategoryIDs),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toReviewResponse(r *entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal(),
		})
	}
	return dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		AddressID:       o.AddressID,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentIntentID: o.PaymentIntentID,
		Total:           o.Total,
		Notes:           o.Notes,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toConsultationResponse(c *entity.Consultation) dto.ConsultationResponse {
	return dto.ConsultationResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Date:      c.Date,
		Time:      c.Time,
		Type:      string(c.Type),
		Status:    string(c.Status),
		Notes:     c.Notes,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toDesignIdeaResponse(d *entity.DesignIdea) dto.DesignIdeaResponse {
	return dto.DesignIdeaResponse{
		ID:         d.ID,
		Title:      d.Title,
		Slug:       d.Slug,
		Summary:    d.Summary,
		Content:    d.Content,
		CoverImage: d.CoverImage,
		Images:     orEmpty(d.Images),
		Category:   d.Category,
		Tags:       orEmpty(d.Tags),
		AuthorID:   d.AuthorID,
		Published:  d.Published,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toPortfolioResponse(p *entity.PortfolioProject) dto.PortfolioResponse {
	return dto.PortfolioResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Client:      p.Client,
		Location:    p.Location,
		Category:    p.Category,
		Tags:        orEmpty(p.Tags),
		Images:      orEmpty(p.Images),
		Featured:    p.Featured,
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
