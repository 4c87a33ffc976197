package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse respuesta de GET /api/admin/dashboard.
type DashboardStatsResponse struct {
	TotalUsers           int             `json:"totalUsers"`
	TotalProducts        int             `json:"totalProducts"`
	TotalOrders          int             `json:"totalOrders"`
	Revenue              decimal.Decimal `json:"revenue"` // pedidos no cancelados con pago COMPLETED
	PendingConsultations int             `json:"pendingConsultations"`
	RecentOrders         []OrderResponse `json:"recentOrders"`
}

// DimensionsRequest medidas del ambiente en pies.
type DimensionsRequest struct {
	Length decimal.Decimal  `json:"length" validate:"gt=0"`
	Width  decimal.Decimal  `json:"width" validate:"gt=0"`
	Height *decimal.Decimal `json:"height" validate:"omitempty,gt=0"`
}

// MaterialRequest material cotizado por unidad.
type MaterialRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit" validate:"gte=0"`
	Quantity     decimal.Decimal `json:"quantity" validate:"gt=0"`
}

// FurnitureRequest mueble cotizado por pieza.
type FurnitureRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity int             `json:"quantity" validate:"min=1,max=1000"`
}

// EstimateRequest entrada de POST /api/calculator/estimate.
type EstimateRequest struct {
	Dimensions             DimensionsRequest  `json:"dimensions"`
	RoomType               string             `json:"roomType" validate:"required,max=50"`
	MaterialGrade          string             `json:"materialGrade" validate:"max=50"`
	Materials              []MaterialRequest  `json:"materials" validate:"max=50,dive"`
	Furniture              []FurnitureRequest `json:"furniture" validate:"max=50,dive"`
	AdditionalRequirements string             `json:"additionalRequirements" validate:"max=2000"`
}

// BreakdownResponse desglose de costos.
type BreakdownResponse struct {
	BaseCost      decimal.Decimal `json:"baseCost"`
	MaterialsCost decimal.Decimal `json:"materialsCost"`
	FurnitureCost decimal.Decimal `json:"furnitureCost"`
	LaborCost     decimal.Decimal `json:"laborCost"`
	DesignFee     decimal.Decimal `json:"designFee"`
	Surcharge     decimal.Decimal `json:"surcharge"`
}

// EstimateResponse presupuesto estimado; timeEstimate en días.
type EstimateResponse struct {
	Area          decimal.Decimal   `json:"area"`
	RoomType      string            `json:"roomType"`
	MaterialGrade string            `json:"materialGrade"`
	Breakdown     BreakdownResponse `json:"breakdown"`
	TotalCost     decimal.Decimal   `json:"totalCost"`
	TimeEstimate  int               `json:"timeEstimate"`
}

// RoomRateResponse tarifas publicadas de un ambiente.
type RoomRateResponse struct {
	RoomType  string          `json:"roomType"`
	BaseRate  decimal.Decimal `json:"baseRate"`
	LaborRate decimal.Decimal `json:"laborRate"`
}

// RatesResponse GET /api/calculator/rates.
type RatesResponse struct {
	Rooms          []RoomRateResponse         `json:"rooms"`
	MaterialGrades map[string]decimal.Decimal `json:"materialGrades"`
	DesignFeeRate  decimal.Decimal            `json:"designFeeRate"`
	SurchargeRate  decimal.Decimal            `json:"surchargeRate"`
}
