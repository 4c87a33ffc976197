// Package budget calcula presupuestos estimados de remodelación y amueblado.
//
// Es una función pura de las dimensiones, el tipo de ambiente, la calidad de material,
// las líneas de materiales y muebles, y los requerimientos adicionales, parametrizada
// por una única RateTable.
package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Interiores-api/internal/domain"
)

// MaterialLine material cotizado por unidad.
type MaterialLine struct {
	Name         string
	PricePerUnit decimal.Decimal
	Quantity     decimal.Decimal
}

// FurnitureLine mueble cotizado por pieza.
type FurnitureLine struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// Input datos del presupuesto. Dimensiones en pies.
type Input struct {
	Length                 decimal.Decimal
	Width                  decimal.Decimal
	Height                 *decimal.Decimal
	RoomType               string
	MaterialGrade          string
	Materials              []MaterialLine
	Furniture              []FurnitureLine
	AdditionalRequirements string
}

// Breakdown desglose de costos.
type Breakdown struct {
	BaseCost      decimal.Decimal
	MaterialsCost decimal.Decimal
	FurnitureCost decimal.Decimal
	LaborCost     decimal.Decimal
	DesignFee     decimal.Decimal
	Surcharge     decimal.Decimal
}

// Estimate resultado del cálculo.
type Estimate struct {
	Area             decimal.Decimal
	RoomType         string
	MaterialGrade    string
	Breakdown        Breakdown
	TotalCost        decimal.Decimal
	TimeEstimateDays int
}

// Estimator calculador configurado con una tabla de tarifas.
type Estimator struct {
	rates RateTable
}

// NewEstimator construye el calculador.
func NewEstimator(rates RateTable) *Estimator {
	return &Estimator{rates: rates}
}

// Rates devuelve la tabla en uso.
func (e *Estimator) Rates() RateTable { return e.rates }

// Estimate calcula el presupuesto. Es determinista: mismas entradas, mismo resultado.
func (e *Estimator) Estimate(in Input) (Estimate, error) {
	if !in.Length.IsPositive() || !in.Width.IsPositive() {
		return Estimate{}, fmt.Errorf("%w: largo y ancho deben ser positivos", domain.ErrValidation)
	}
	if in.Height != nil && !in.Height.IsPositive() {
		return Estimate{}, fmt.Errorf("%w: la altura debe ser positiva", domain.ErrValidation)
	}

	grade := NormalizeKey(in.MaterialGrade)
	if grade == "" {
		grade = e.rates.DefaultGrade
	}
	multiplier, ok := e.rates.Grades[grade]
	if !ok {
		return Estimate{}, fmt.Errorf("%w: calidad de material desconocida %q", domain.ErrValidation, in.MaterialGrade)
	}

	room := e.rates.Room(in.RoomType)
	area := in.Length.Mul(in.Width)

	var b Breakdown
	b.BaseCost = area.Mul(room.BaseRate).Mul(multiplier)
	for _, m := range in.Materials {
		b.MaterialsCost = b.MaterialsCost.Add(m.PricePerUnit.Mul(m.Quantity))
	}
	for _, f := range in.Furniture {
		b.FurnitureCost = b.FurnitureCost.Add(f.Price.Mul(decimal.NewFromInt(int64(f.Quantity))))
	}
	b.LaborCost = area.Mul(room.LaborRate)
	b.DesignFee = b.BaseCost.Mul(e.rates.DesignFeeRate)
	if strings.TrimSpace(in.AdditionalRequirements) != "" {
		subtotal := b.BaseCost.Add(b.MaterialsCost).Add(b.FurnitureCost).Add(b.LaborCost)
		b.Surcharge = subtotal.Mul(e.rates.SurchargeRate)
	}

	total := b.BaseCost.Add(b.MaterialsCost).Add(b.FurnitureCost).
		Add(b.LaborCost).Add(b.DesignFee).Add(b.Surcharge)

	return Estimate{
		Area:             area,
		RoomType:         NormalizeKey(in.RoomType),
		MaterialGrade:    grade,
		Breakdown:        b,
		TotalCost:        total,
		TimeEstimateDays: timeEstimate(area, room.TimeMultiplier),
	}, nil
}

// timeEstimate días según superficie: <100 → 7, <200 → 14, <500 → 30, si no 45; por el factor del ambiente.
func timeEstimate(area, multiplier decimal.Decimal) int {
	var days int64
	switch {
	case area.LessThan(decimal.NewFromInt(100)):
		days = 7
	case area.LessThan(decimal.NewFromInt(200)):
		days = 14
	case area.LessThan(decimal.NewFromInt(500)):
		days = 30
	default:
		days = 45
	}
	if multiplier.IsZero() {
		return int(days)
	}
	return int(decimal.NewFromInt(days).Mul(multiplier).Ceil().IntPart())
}
