package usecase

import (
	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/domain/budget"
)

// CalculatorUseCase expone el estimador de presupuesto.
type CalculatorUseCase struct {
	estimator *budget.Estimator
}

// NewCalculatorUseCase construye el caso de uso con la tabla de tarifas inyectada.
func NewCalculatorUseCase(rates budget.RateTable) *CalculatorUseCase {
	return &CalculatorUseCase{estimator: budget.NewEstimator(rates)}
}

// Estimate calcula el presupuesto.
func (uc *CalculatorUseCase) Estimate(in dto.EstimateRequest) (*dto.EstimateResponse, error) {
	input := budget.Input{
		Length:                 in.Dimensions.Length,
		Width:                  in.Dimensions.Width,
		Height:                 in.Dimensions.Height,
		RoomType:               in.RoomType,
		MaterialGrade:          in.MaterialGrade,
		AdditionalRequirements: in.AdditionalRequirements,
	}
	for _, m := range in.Materials {
		input.Materials = append(input.Materials, budget.MaterialLine{Name: m.Name, PricePerUnit: m.PricePerUnit, Quantity: m.Quantity})
	}
	for _, f := range in.Furniture {
		input.Furniture = append(input.Furniture, budget.FurnitureLine{Name: f.Name, Price: f.Price, Quantity: f.Quantity})
	}

	est, err := uc.estimator.Estimate(input)
	if err != nil {
		return nil, err
	}
	return &dto.EstimateResponse{
		Area:          est.Area,
		RoomType:      est.RoomType,
		MaterialGrade: est.MaterialGrade,
		Breakdown: dto.BreakdownResponse{
			BaseCost:      est.Breakdown.BaseCost,
			MaterialsCost: est.Breakdown.MaterialsCost,
			FurnitureCost: est.Breakdown.FurnitureCost,
			LaborCost:     est.Breakdown.LaborCost,
			DesignFee:     est.Breakdown.DesignFee,
			Surcharge:     est.Breakdown.Surcharge,
		},
		TotalCost:    est.TotalCost,
		TimeEstimate: est.TimeEstimateDays,
	}, nil
}

// Rates tarifas publicadas.
func (uc *CalculatorUseCase) Rates() dto.RatesResponse {
	t := uc.estimator.Rates()
	out := dto.RatesResponse{
		MaterialGrades: t.Grades,
		DesignFeeRate:  t.DesignFeeRate,
		SurchargeRate:  t.SurchargeRate,
	}
	for _, room := range t.RoomTypes() {
		r := t.Rooms[room]
		out.Rooms = append(out.Rooms, dto.RoomRateResponse{RoomType: room, BaseRate: r.BaseRate, LaborRate: r.LaborRate})
	}
	return out
}
