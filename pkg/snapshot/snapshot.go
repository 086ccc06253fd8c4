// Package snapshot serializes the whole AppState to and from its JSON
// interchange form. The same codec backs both durable persistence and the
// copy-paste backup/restore flow, so an imported document goes through
// exactly the validation a stored one does.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fabrica-tools/costbook/pkg/types"
)

// ErrInvalidSnapshot marks an import rejection: malformed JSON or a
// document whose top level is not an object. The caller's state is left
// untouched on any error from Decode.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// document mirrors the interchange layout. Collections are raw so that a
// missing or mistyped field decays to empty instead of failing the whole
// import; the codec guarantees the top-level shape, not the business
// validity of every nested record.
type document struct {
	Materials           json.RawMessage `json:"materials"`
	Products            json.RawMessage `json:"products"`
	SelectedProductCode string          `json:"selectedProductCode"`
}

// Encode serializes the state as pretty-printed JSON, two-space indented,
// suitable for a backup file or a paste buffer. Numeric fields serialize as
// numbers.
func Encode(state *types.AppState) ([]byte, error) {
	out := struct {
		Materials           []types.Material `json:"materials"`
		Products            []types.Product  `json:"products"`
		SelectedProductCode string           `json:"selectedProductCode"`
	}{
		Materials:           state.Materials,
		Products:            state.Products,
		SelectedProductCode: state.SelectedProductCode,
	}
	if out.Materials == nil {
		out.Materials = []types.Material{}
	}
	if out.Products == nil {
		out.Products = []types.Product{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses an interchange document into a fresh AppState. A document
// that is not a JSON object is rejected with ErrInvalidSnapshot; within a
// valid object, absent or mistyped materials/products arrays decay to
// empty, and an absent selection decays to "". Lines without a stable id
// (older exports) get one assigned.
func Decode(data []byte) (*types.AppState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// "null", arrays, and bare scalars are syntactically valid JSON
		// but not a snapshot document.
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidSnapshot)
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	state := types.NewAppState()
	state.SelectedProductCode = doc.SelectedProductCode

	if len(doc.Materials) > 0 {
		var materials []types.Material
		if err := json.Unmarshal(doc.Materials, &materials); err == nil && materials != nil {
			state.Materials = materials
		}
	}
	if len(doc.Products) > 0 {
		var products []types.Product
		if err := json.Unmarshal(doc.Products, &products); err == nil && products != nil {
			state.Products = products
		}
	}

	for pi := range state.Products {
		p := &state.Products[pi]
		if p.Recipe == nil {
			p.Recipe = []types.RecipeLine{}
		}
		for li := range p.Recipe {
			if p.Recipe[li].LineID == "" {
				p.Recipe[li].LineID = types.NewLineID()
			}
		}
	}

	return state, nil
}
