package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/domain"
	"github.com/jhoicas/Interiores-api/internal/domain/budget"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func assertDec(t *testing.T, want float64, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: esperado %v, obtenido %s", msg, want, got.String())
}

func TestEstimate_KitchenWithoutLines(t *testing.T) {
	e := budget.NewEstimator(budget.DefaultRateTable())

	out, err := e.Estimate(budget.Input{Length: dec(10), Width: dec(10), RoomType: "KITCHEN"})
	require.NoError(t, err)

	assertDec(t, 100, out.Area, "area")
	assertDec(t, 7000, out.Breakdown.BaseCost, "base")
	assertDec(t, 2000, out.Breakdown.LaborCost, "mano de obra")
	assertDec(t, 1050, out.Breakdown.DesignFee, "diseño")
	assertDec(t, 0, out.Breakdown.Surcharge, "recargo")
	assertDec(t, 10050, out.TotalCost, "total")
	assert.Equal(t, 21, out.TimeEstimateDays, "100 sq ft → 14 días × 1.5 en cocina")
	assert.Equal(t, "STANDARD", out.MaterialGrade)
}

func TestEstimate_IsDeterministic(t *testing.T) {
	e := budget.NewEstimator(budget.DefaultRateTable())
	in := budget.Input{
		Length: dec(12.5), Width: dec(8), RoomType: "living room",
		Materials:              []budget.MaterialLine{{Name: "roble", PricePerUnit: dec(12.75), Quantity: dec(40)}},
		Furniture:              []budget.FurnitureLine{{Name: "sofá", Price: dec(899.99), Quantity: 2}},
		AdditionalRequirements: "iluminación empotrada",
	}
	first, err := e.Estimate(in)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Estimate(in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEstimate_LinesAndSurcharge(t *testing.T) {
	e := budget.NewEstimator(budget.DefaultRateTable())
	out, err := e.Estimate(budget.Input{
		Length: dec(10), Width: dec(20), RoomType: "bedroom",
		Materials:              []budget.MaterialLine{{PricePerUnit: dec(10), Quantity: dec(30)}},
		Furniture:              []budget.FurnitureLine{{Price: dec(500), Quantity: 2}},
		AdditionalRequirements: "closet a medida",
	})
	require.NoError(t, err)

	// area 200: base 40*200=8000, labor 12*200=2400, materiales 300, muebles 1000
	assertDec(t, 8000, out.Breakdown.BaseCost, "base")
	assertDec(t, 300, out.Breakdown.MaterialsCost, "materiales")
	assertDec(t, 1000, out.Breakdown.FurnitureCost, "muebles")
	assertDec(t, 2400, out.Breakdown.LaborCost, "mano de obra")
	assertDec(t, 1200, out.Breakdown.DesignFee, "diseño")
	assertDec(t, 585, out.Breakdown.Surcharge, "5% de 11700")
	assertDec(t, 13485, out.TotalCost, "total")
	assert.Equal(t, 30, out.TimeEstimateDays)
}

func TestEstimate_UnknownRoomUsesDefault(t *testing.T) {
	e := budget.NewEstimator(budget.DefaultRateTable())
	out, err := e.Estimate(budget.Input{Length: dec(5), Width: dec(5), RoomType: "garage"})
	require.NoError(t, err)
	assertDec(t, 45*25, out.Breakdown.BaseCost, "base por defecto")
	assert.Equal(t, 7, out.TimeEstimateDays)
}

func TestEstimate_GradeMultiplier(t *testing.T) {
	e := budget.NewEstimator(budget.DefaultRateTable())
	out, err := e.Estimate(budget.Input{Length: dec(10), Width: dec(10), RoomType: "kitchen", MaterialGrade: "premium"})
	require.NoError(t, err)
	assertDec(t, 10500, out.Breakdown.BaseCost, "base premium")

	_, err = e.Estimate(budget.Input{Length: dec(10), Width: dec(10), MaterialGrade: "oro"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEstimate_TimeBuckets(t *testing.T) {
	e := budget.NewEstimator(budget.DefaultRateTable())
	cases := []struct {
		l, w float64
		room string
		days int
	}{
		{9, 10, "office", 7},
		{10, 10, "office", 14},
		{20, 20, "office", 30},
		{25, 20, "office", 45},
		{25, 20, "bathroom", 68},
	}
	for _, c := range cases {
		out, err := e.Estimate(budget.Input{Length: dec(c.l), Width: dec(c.w), RoomType: c.room})
		require.NoError(t, err)
		assert.Equal(t, c.days, out.TimeEstimateDays, "%vx%v %s", c.l, c.w, c.room)
	}
}

func TestEstimate_RejectsNonPositiveDimensions(t *testing.T) {
	e := budget.NewEstimator(budget.DefaultRateTable())
	_, err := e.Estimate(budget.Input{Length: dec(0), Width: dec(10)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	h := dec(-1)
	_, err = e.Estimate(budget.Input{Length: dec(1), Width: dec(1), Height: &h})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRateFile_Merge(t *testing.T) {
	fee := 0.2
	file := budget.RateFile{
		Rooms:         map[string]budget.RoomRateFile{"kitchen": {BaseRate: 100, LaborRate: 30}},
		Grades:        map[string]float64{"eco": 0.8},
		DesignFeeRate: &fee,
	}
	table := file.Merge(budget.DefaultRateTable())

	assertDec(t, 100, table.Room("Kitchen").BaseRate, "cocina sobrescrita")
	assertDec(t, 1, table.Room("kitchen").TimeMultiplier, "factor por defecto del archivo")
	assertDec(t, 80, table.Room("bathroom").BaseRate, "baño conservado")
	assertDec(t, 0.8, table.Grades["ECO"], "calidad nueva")
	assertDec(t, 0.2, table.DesignFeeRate, "honorarios")
	assertDec(t, 0.05, table.SurchargeRate, "recargo conservado")
}
