package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrica-tools/costbook/pkg/types"
)

var materials = []types.Material{
	{Code: "A", Desc: "Material A", Cost: 10},
	{Code: "B", Desc: "Material B", Cost: 2.5},
}

func TestLineCost(t *testing.T) {
	idx := Index(materials)

	assert.Equal(t, 30.0, LineCost(types.RecipeLine{MPCode: "A", Qty: 3}, idx))
	assert.Equal(t, 10.0, LineCost(types.RecipeLine{MPCode: "B", Qty: 4}, idx))
}

func TestLineCostDanglingReference(t *testing.T) {
	idx := Index(materials)

	got := LineCost(types.RecipeLine{MPCode: "DELETED", Qty: 7}, idx)
	assert.Equal(t, 0.0, got, "a dangling line costs zero, not an error")
}

func TestUnitAndDailyCost(t *testing.T) {
	p := &types.Product{
		Code:     "P1",
		Desc:     "Product",
		DailyQty: 100,
		Recipe: []types.RecipeLine{
			{MPCode: "A", Qty: 3},
			{MPCode: "B", Qty: 4},
		},
	}
	idx := Index(materials)

	assert.Equal(t, 40.0, UnitCost(p, idx))
	assert.Equal(t, 4000.0, DailyCost(p, idx))
}

func TestUnitCostIgnoresDanglingLines(t *testing.T) {
	p := &types.Product{
		Code: "P1",
		Desc: "Product",
		Recipe: []types.RecipeLine{
			{MPCode: "A", Qty: 3},
			{MPCode: "DELETED", Qty: 99},
		},
	}

	assert.Equal(t, 30.0, UnitCost(p, Index(materials)))
}

func TestUnitCostEmptyRecipe(t *testing.T) {
	p := &types.Product{Code: "P1", Desc: "Product", DailyQty: 5}

	assert.Equal(t, 0.0, UnitCost(p, Index(materials)))
	assert.Equal(t, 0.0, DailyCost(p, Index(materials)))
}

func TestSummarize(t *testing.T) {
	p := &types.Product{
		Code:     "P1",
		Desc:     "Product",
		DailyQty: 100,
		Recipe: []types.RecipeLine{
			{LineID: "l1", MPCode: "A", Qty: 3, Note: "fine"},
			{LineID: "l2", MPCode: "GONE", Qty: 2},
		},
	}

	s := Summarize(p, materials)

	assert.Equal(t, "P1", s.Code)
	assert.Equal(t, 30.0, s.UnitCost)
	assert.Equal(t, 3000.0, s.DailyCost)
	require.Len(t, s.Lines, 2)

	assert.Equal(t, 0, s.Lines[0].Index)
	assert.Equal(t, "Material A", s.Lines[0].Desc)
	assert.False(t, s.Lines[0].Dangling)
	assert.Equal(t, 30.0, s.Lines[0].Cost)
	assert.Equal(t, "fine", s.Lines[0].Note)

	assert.Equal(t, 1, s.Lines[1].Index)
	assert.True(t, s.Lines[1].Dangling)
	assert.Equal(t, 0.0, s.Lines[1].Cost)
}
