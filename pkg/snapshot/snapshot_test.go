package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrica-tools/costbook/pkg/types"
)

func sampleState() *types.AppState {
	return &types.AppState{
		Materials: []types.Material{
			{Code: "FLOUR", Desc: "Wheat flour", Cost: 12.5},
			{Code: "YEAST", Desc: "Dry yeast", Cost: 80},
		},
		Products: []types.Product{
			{
				Code:     "BREAD",
				Desc:     "White loaf",
				DailyQty: 100,
				Recipe: []types.RecipeLine{
					{LineID: "l1", MPCode: "FLOUR", Qty: 0.5, Note: "sifted"},
					{LineID: "l2", MPCode: "YEAST", Qty: 0.01},
				},
			},
		},
		SelectedProductCode: "BREAD",
	}
}

func TestRoundTrip(t *testing.T) {
	state := sampleState()

	data, err := Encode(state)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestEncodeIsPrettyPrinted(t *testing.T) {
	data, err := Encode(sampleState())
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"materials\"")
	assert.Contains(t, string(data), "\"selectedProductCode\": \"BREAD\"")
}

func TestEncodeEmptyState(t *testing.T) {
	data, err := Encode(&types.AppState{})
	require.NoError(t, err)

	// nil collections serialize as [] rather than null
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.JSONEq(t, "[]", string(doc["materials"]))
	assert.JSONEq(t, "[]", string(doc["products"]))
}

func TestDecodeRejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed syntax", data: "{not valid}"},
		{name: "array top level", data: "[]"},
		{name: "null top level", data: "null"},
		{name: "string top level", data: `"hello"`},
		{name: "empty input", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
			assert.Nil(t, got)
		})
	}
}

func TestDecodeLenientFields(t *testing.T) {
	t.Run("missing collections decay to empty", func(t *testing.T) {
		got, err := Decode([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, got.Materials)
		assert.Empty(t, got.Products)
		assert.Empty(t, got.SelectedProductCode)
		assert.NotNil(t, got.Materials)
		assert.NotNil(t, got.Products)
	})

	t.Run("mistyped materials decay to empty", func(t *testing.T) {
		got, err := Decode([]byte(`{"materials": "oops", "products": 7}`))
		require.NoError(t, err)
		assert.Empty(t, got.Materials)
		assert.Empty(t, got.Products)
	})

	t.Run("nested records are trusted", func(t *testing.T) {
		// Deep business-rule validation is deliberately not the codec's
		// job; a negative cost survives import.
		got, err := Decode([]byte(`{"materials": [{"code": "X", "desc": "", "cost": -5}]}`))
		require.NoError(t, err)
		require.Len(t, got.Materials, 1)
		assert.Equal(t, -5.0, got.Materials[0].Cost)
	})
}

func TestDecodeAssignsLineIDs(t *testing.T) {
	// Snapshots from before stable line ids have bare lines.
	data := []byte(`{
		"products": [
			{"code": "BREAD", "desc": "White loaf", "dailyQty": 1,
			 "recipe": [{"mpCode": "FLOUR", "qty": 2, "note": ""}]}
		]
	}`)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	require.Len(t, got.Products[0].Recipe, 1)
	assert.NotEmpty(t, got.Products[0].Recipe[0].LineID)
}

func TestDecodeNilRecipeBecomesEmpty(t *testing.T) {
	got, err := Decode([]byte(`{"products": [{"code": "P", "desc": "d", "dailyQty": 0}]}`))
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.NotNil(t, got.Products[0].Recipe)
}
