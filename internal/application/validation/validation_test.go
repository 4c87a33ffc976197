package validation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Interiores-api/internal/application/dto"
	"github.com/jhoicas/Interiores-api/internal/application/validation"
	"github.com/jhoicas/Interiores-api/internal/domain"
)

func TestStruct_Valid(t *testing.T) {
	err := validation.Struct(dto.CreateReviewRequest{Rating: 5, Comment: "Excelente sofá"})
	assert.NoError(t, err)
}

func TestStruct_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		err := validation.Struct(dto.CreateReviewRequest{Rating: rating})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "rating", verr.Fields[0].Field)
	}
}

func TestStruct_DecimalAndNestedFields(t *testing.T) {
	req := dto.EstimateRequest{
		Dimensions: dto.DimensionsRequest{Length: decimal.NewFromInt(10), Width: decimal.Zero},
		RoomType:   "kitchen",
		Furniture:  []dto.FurnitureRequest{{Name: "Mesa", Price: decimal.NewFromInt(100), Quantity: 0}},
	}
	err := validation.Struct(req)
	require.Error(t, err)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Contains(t, fields, "dimensions.width")
	assert.Contains(t, fields, "furniture[0].quantity")
	assert.NotContains(t, fields, "dimensions.length")
}

func TestStruct_ConsultationTimeFormat(t *testing.T) {
	req := dto.CreateConsultationRequest{Time: "9am", Type: "VIRTUAL"}
	err := validation.Struct(req)
	require.Error(t, err)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "debe tener el formato HH:MM", fields["time"])
	assert.Equal(t, "es obligatorio", fields["date"])
}

func TestFieldErr(t *testing.T) {
	err := validation.FieldErr("parentId", "no existe")
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), "parentId: no existe")
}

func TestStruct_ProductPriceFilters(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.ProductListQuery{MinPrice: "99.99", MaxPrice: "1500.50"}))
	assert.NoError(t, validation.Struct(dto.ProductListQuery{MinPrice: "100", MaxPrice: "2500"}))

	err := validation.Struct(dto.ProductListQuery{MinPrice: "barato", MaxPrice: "1.2.3"})
	require.Error(t, err)
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "debe ser numérico", fields["minPrice"])
	assert.Equal(t, "debe ser numérico", fields["maxPrice"])
}
