package types

import (
	"strings"

	"github.com/google/uuid"
)

// RecipeLine is one material-quantity pair in a product's recipe. Lines are
// owned by their product and ordered by insertion. MPCode may dangle after
// the referenced material is deleted; a dangling line costs zero and is a
// normal, displayable state.
type RecipeLine struct {
	LineID string  `json:"lineId,omitempty"`
	MPCode string  `json:"mpCode"`
	Qty    float64 `json:"qty"`
	Note   string  `json:"note"`
}

// ValidateQty checks a recipe line quantity. NaN and the infinities fail
// comparison-based guards and cannot be serialized to JSON, so they are
// rejected along with zero and negatives.
func ValidateQty(qty float64) error {
	if !finitePositive(qty) {
		return ErrQtyNotPositive
	}
	return nil
}

// NewLineID generates a stable identifier for a recipe line. Positional
// indices shift when earlier lines are removed; the id does not.
func NewLineID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Product is a finished good with a recipe and a daily production quantity.
// Identity is the trimmed Code; re-adding a code overwrites Desc and
// DailyQty while preserving the recipe.
type Product struct {
	Code     string       `json:"code"`
	Desc     string       `json:"desc"`
	DailyQty float64      `json:"dailyQty"`
	Recipe   []RecipeLine `json:"recipe"`
}

// Validate checks the product's field constraints.
func (p Product) Validate() error {
	if NormalizeCode(p.Code) == "" {
		return ErrCodeRequired
	}
	if strings.TrimSpace(p.Desc) == "" {
		return ErrDescRequired
	}
	if !finiteNonNegative(p.DailyQty) {
		return ErrDailyQtyNegative
	}
	return nil
}

// FindLine returns the recipe line referencing mpCode, or nil.
func (p *Product) FindLine(mpCode string) *RecipeLine {
	for i := range p.Recipe {
		if p.Recipe[i].MPCode == mpCode {
			return &p.Recipe[i]
		}
	}
	return nil
}

// AddLine adds qty of mpCode to the recipe. If a line for mpCode already
// exists its quantity accumulates and the note is overwritten only when the
// new note is non-empty; otherwise a new line is appended at the end with a
// fresh LineID. Returns true when an existing line accumulated.
// The caller validates mpCode and qty; AddLine assumes both are good.
func (p *Product) AddLine(mpCode string, qty float64, note string) bool {
	if line := p.FindLine(mpCode); line != nil {
		line.Qty += qty
		if note != "" {
			line.Note = note
		}
		return true
	}
	p.Recipe = append(p.Recipe, RecipeLine{
		LineID: NewLineID(),
		MPCode: mpCode,
		Qty:    qty,
		Note:   note,
	})
	return false
}

// RemoveLineAt removes the line at index, shifting later lines down.
// Out-of-bounds indices are a no-op, not an error: the index may come from
// a stale listing. Returns true when a line was removed.
func (p *Product) RemoveLineAt(index int) bool {
	if index < 0 || index >= len(p.Recipe) {
		return false
	}
	p.Recipe = append(p.Recipe[:index], p.Recipe[index+1:]...)
	return true
}

// RemoveLineByID removes the line with the given stable id. Returns true
// when a line was removed.
func (p *Product) RemoveLineByID(lineID string) bool {
	if lineID == "" {
		return false
	}
	for i := range p.Recipe {
		if p.Recipe[i].LineID == lineID {
			return p.RemoveLineAt(i)
		}
	}
	return false
}

// RemoveLinesFor removes every line referencing mpCode. Returns true when
// at least one line was removed. Used by the material-delete cascade.
func (p *Product) RemoveLinesFor(mpCode string) bool {
	kept := p.Recipe[:0]
	removed := false
	for _, line := range p.Recipe {
		if line.MPCode == mpCode {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	p.Recipe = kept
	return removed
}
