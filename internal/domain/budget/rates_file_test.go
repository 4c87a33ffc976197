package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/domain/budget"
	"github.com/jhoicas/Interiores-api/pkg/config"
)

// laborOnlyEstimator carga el archivo de ejemplo con mano de obra por ambiente.
func laborOnlyEstimator(t *testing.T) *budget.Estimator {
	t.Helper()
	var file budget.RateFile
	require.NoError(t, config.LoadFile("../../../config/budget_rates.labor.yaml", &file))
	return budget.NewEstimator(file.Merge(budget.DefaultRateTable()))
}

func TestRateFile_LaborPerRoom(t *testing.T) {
	e := laborOnlyEstimator(t)
	cases := []struct {
		room  string
		labor float64
	}{
		{"kitchen", 25000},
		{"BATHROOM", 30000},
		{"Bedroom", 15000},
		{"living room", 20000},
		{"garage", 18000},
	}
	for _, tc := range cases {
		out, err := e.Estimate(budget.Input{Length: dec(10), Width: dec(10), RoomType: tc.room})
		require.NoError(t, err, tc.room)
		assertDec(t, tc.labor, out.Breakdown.LaborCost, tc.room)
		assertDec(t, 0, out.Breakdown.BaseCost, tc.room)
		assertDec(t, 0, out.Breakdown.DesignFee, tc.room)
		assertDec(t, tc.labor, out.TotalCost, tc.room)
	}
}

func TestRateFile_LaborWithLinesAndSurcharge(t *testing.T) {
	e := laborOnlyEstimator(t)
	out, err := e.Estimate(budget.Input{
		Length: dec(10), Width: dec(20), RoomType: "bedroom",
		Materials:              []budget.MaterialLine{{PricePerUnit: dec(10), Quantity: dec(30)}},
		Furniture:              []budget.FurnitureLine{{Price: dec(500), Quantity: 2}},
		AdditionalRequirements: "closet a medida",
	})
	require.NoError(t, err)

	// area 200: mano de obra 150*200=3000, materiales 300, muebles 1000
	assertDec(t, 3000, out.Breakdown.LaborCost, "mano de obra")
	assertDec(t, 215, out.Breakdown.Surcharge, "5% de 4300")
	assertDec(t, 4515, out.TotalCost, "total")
	assert.Equal(t, 30, out.TimeEstimateDays)

	kitchen, err := e.Estimate(budget.Input{Length: dec(10), Width: dec(10), RoomType: "KITCHEN"})
	require.NoError(t, err)
	assert.Equal(t, 21, kitchen.TimeEstimateDays, "100 sq ft → 14 días × 1.5")
}
