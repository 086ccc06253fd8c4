// Package costing computes recipe costs from the domain model. Everything
// here is a pure function over the current state; costs are recomputed on
// demand rather than cached because a recomputation is linear in recipe
// length and cache invalidation is not worth carrying.
package costing

import "github.com/fabrica-tools/costbook/pkg/types"

// CostIndex maps material codes to unit costs.
type CostIndex map[string]float64

// Index builds a CostIndex from a material list.
func Index(materials []types.Material) CostIndex {
	idx := make(CostIndex, len(materials))
	for _, m := range materials {
		idx[m.Code] = m.Cost
	}
	return idx
}

// LineCost returns qty times the referenced material's unit cost. A line
// whose material has been deleted costs zero; a dangling reference is a
// normal state, not an error.
func LineCost(line types.RecipeLine, idx CostIndex) float64 {
	return line.Qty * idx[line.MPCode]
}

// UnitCost returns the cost of producing one unit of the product: the sum
// of LineCost over the recipe in insertion order.
func UnitCost(p *types.Product, idx CostIndex) float64 {
	var total float64
	for _, line := range p.Recipe {
		total += LineCost(line, idx)
	}
	return total
}

// DailyCost returns UnitCost scaled by the product's daily quantity.
func DailyCost(p *types.Product, idx CostIndex) float64 {
	return UnitCost(p, idx) * p.DailyQty
}

// LineSummary is one costed recipe line for display.
type LineSummary struct {
	Index    int     `json:"index"`
	LineID   string  `json:"lineId,omitempty"`
	MPCode   string  `json:"mpCode"`
	Desc     string  `json:"desc"`
	Dangling bool    `json:"dangling"`
	Qty      float64 `json:"qty"`
	Cost     float64 `json:"cost"`
	Note     string  `json:"note,omitempty"`
}

// Summary is a fully costed product for display.
type Summary struct {
	Code      string        `json:"code"`
	Desc      string        `json:"desc"`
	DailyQty  float64       `json:"dailyQty"`
	Lines     []LineSummary `json:"lines"`
	UnitCost  float64       `json:"unitCost"`
	DailyCost float64       `json:"dailyCost"`
}

// Summarize costs every line of the product against the material list.
// Dangling lines are flagged so the display layer can mark them.
func Summarize(p *types.Product, materials []types.Material) Summary {
	idx := Index(materials)
	descs := make(map[string]string, len(materials))
	for _, m := range materials {
		descs[m.Code] = m.Desc
	}

	s := Summary{
		Code:     p.Code,
		Desc:     p.Desc,
		DailyQty: p.DailyQty,
		Lines:    make([]LineSummary, 0, len(p.Recipe)),
	}
	for i, line := range p.Recipe {
		desc, ok := descs[line.MPCode]
		s.Lines = append(s.Lines, LineSummary{
			Index:    i,
			LineID:   line.LineID,
			MPCode:   line.MPCode,
			Desc:     desc,
			Dangling: !ok,
			Qty:      line.Qty,
			Cost:     LineCost(line, idx),
			Note:     line.Note,
		})
	}
	s.UnitCost = UnitCost(p, idx)
	s.DailyCost = s.UnitCost * p.DailyQty
	return s
}
