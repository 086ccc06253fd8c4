// Package repository owns the in-memory AppState and every mutation of it.
// Each operation validates, mutates synchronously, then persists the whole
// snapshot through the attached store. Validation failures never mutate;
// a persist failure is returned as a *types.StorageError with the mutation
// already applied, so the session keeps working and the caller can warn
// that the last change may not be durable.
package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fabrica-tools/costbook/pkg/snapshot"
	"github.com/fabrica-tools/costbook/pkg/types"
)

// Repository is the single writer of an AppState backed by a Store.
type Repository struct {
	mu    sync.Mutex
	state *types.AppState
	store types.Store
}

// Open hydrates a Repository from the attached store. An absent snapshot
// yields an empty state; a stored snapshot that fails to decode is
// reported rather than silently discarded.
func Open(ctx context.Context, store types.Store) (*Repository, error) {
	data, ok, err := store.Get(ctx, types.StateKey)
	if err != nil {
		return nil, err
	}

	state := types.NewAppState()
	if ok {
		state, err = snapshot.Decode(data)
		if err != nil {
			return nil, err
		}
	}

	return &Repository{state: state, store: store}, nil
}

// persist writes the full snapshot under the fixed key. The snapshot is one
// atomic document; there is no per-collection save.
func (r *Repository) persist(ctx context.Context) error {
	data, err := snapshot.Encode(r.state)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, types.StateKey, data)
}

// UpsertMaterial adds a material or, when the code already exists,
// overwrites its description and cost in place. Returns true when a new
// material was created.
func (r *Repository) UpsertMaterial(ctx context.Context, code, desc string, cost float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := types.Material{
		Code: types.NormalizeCode(code),
		Desc: strings.TrimSpace(desc),
		Cost: cost,
	}
	if err := m.Validate(); err != nil {
		return false, err
	}

	created := false
	if existing := r.state.FindMaterial(m.Code); existing != nil {
		existing.Desc = m.Desc
		existing.Cost = m.Cost
	} else {
		r.state.Materials = append(r.state.Materials, m)
		created = true
	}

	return created, r.persist(ctx)
}

// DeleteMaterial removes the material with the given code and cascades:
// every recipe line referencing it is removed from every product. Returns
// the number of products whose recipes changed; an informational signal,
// not an error. Deleting an absent code is a no-op.
func (r *Repository) DeleteMaterial(ctx context.Context, code string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code = types.NormalizeCode(code)
	if r.state.FindMaterial(code) == nil {
		return 0, nil
	}

	kept := r.state.Materials[:0]
	for _, m := range r.state.Materials {
		if m.Code != code {
			kept = append(kept, m)
		}
	}
	r.state.Materials = kept

	affected := 0
	for i := range r.state.Products {
		if r.state.Products[i].RemoveLinesFor(code) {
			affected++
		}
	}

	return affected, r.persist(ctx)
}

// UpsertProduct adds a product or overwrites the description and daily
// quantity of an existing one, preserving its recipe. The product becomes
// the current selection either way. Returns true when a new product was
// created.
func (r *Repository) UpsertProduct(ctx context.Context, code, desc string, dailyQty float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := types.Product{
		Code:     types.NormalizeCode(code),
		Desc:     strings.TrimSpace(desc),
		DailyQty: dailyQty,
	}
	if err := p.Validate(); err != nil {
		return false, err
	}

	created := false
	if existing := r.state.FindProduct(p.Code); existing != nil {
		existing.Desc = p.Desc
		existing.DailyQty = p.DailyQty
	} else {
		p.Recipe = []types.RecipeLine{}
		r.state.Products = append(r.state.Products, p)
		created = true
	}

	r.state.SelectedProductCode = p.Code
	return created, r.persist(ctx)
}

// SelectProduct sets the current selection. An empty code clears the
// selection; a code that matches no product leaves the selection as it
// was (stale listings are not worth failing over).
func (r *Repository) SelectProduct(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	code = types.NormalizeCode(code)
	if code != "" && r.state.FindProduct(code) == nil {
		return nil
	}
	if r.state.SelectedProductCode == code {
		return nil
	}

	r.state.SelectedProductCode = code
	return r.persist(ctx)
}

// resolveProduct returns the product for code, falling back to the current
// selection when code is empty. The caller must hold r.mu.
func (r *Repository) resolveProduct(code string) (*types.Product, error) {
	code = types.NormalizeCode(code)
	if code == "" {
		p := r.state.SelectedProduct()
		if p == nil {
			return nil, types.ErrNoProduct
		}
		return p, nil
	}
	p := r.state.FindProduct(code)
	if p == nil {
		return nil, types.ErrProductNotFound
	}
	return p, nil
}

// AddRecipeLine adds qty of a material to a product's recipe. An empty
// productCode targets the current selection. A line that already
// references mpCode accumulates the quantity and takes the note only when
// non-empty; otherwise a new line is appended. Returns true when an
// existing line accumulated.
func (r *Repository) AddRecipeLine(ctx context.Context, productCode, mpCode string, qty float64, note string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.resolveProduct(productCode)
	if err != nil {
		return false, err
	}

	mpCode = types.NormalizeCode(mpCode)
	if mpCode == "" {
		return false, types.ErrMaterialRequired
	}
	if err := types.ValidateQty(qty); err != nil {
		return false, err
	}

	accumulated := p.AddLine(mpCode, qty, strings.TrimSpace(note))
	return accumulated, r.persist(ctx)
}

// RemoveRecipeLine removes the line at index from a product's recipe. An
// out-of-bounds index is a no-op: the index is a transient handle from the
// last listing and may be stale. Returns true when a line was removed.
func (r *Repository) RemoveRecipeLine(ctx context.Context, productCode string, index int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.resolveProduct(productCode)
	if err != nil {
		return false, err
	}

	if !p.RemoveLineAt(index) {
		return false, nil
	}
	return true, r.persist(ctx)
}

// RemoveRecipeLineByID removes the line with the given stable id. Unlike a
// positional index, the id cannot drift when earlier lines are removed.
// Returns true when a line was removed.
func (r *Repository) RemoveRecipeLineByID(ctx context.Context, productCode, lineID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.resolveProduct(productCode)
	if err != nil {
		return false, err
	}

	if !p.RemoveLineByID(lineID) {
		return false, nil
	}
	return true, r.persist(ctx)
}

// ClearAll resets the state to its defaults and clears the store.
func (r *Repository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Reset()
	return r.store.Clear(ctx)
}

// Export serializes the current state to the interchange form.
func (r *Repository) Export() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return snapshot.Encode(r.state)
}

// Import replaces the whole state with a decoded interchange document and
// persists it. A document that fails to decode leaves the current state
// untouched.
func (r *Repository) Import(ctx context.Context, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := snapshot.Decode(data)
	if err != nil {
		return err
	}

	r.state = state
	return r.persist(ctx)
}

// State exposes the live aggregate for read paths (costing, display).
// Callers must not hold the returned pointer across mutations.
func (r *Repository) State() *types.AppState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Materials returns a copy of the material list sorted by code.
func (r *Repository) Materials() []types.Material {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Material, len(r.state.Materials))
	copy(out, r.state.Materials)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Products returns a copy of the product list sorted by code. Recipes are
// shared slices; treat them as read-only.
func (r *Repository) Products() []types.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Product, len(r.state.Products))
	copy(out, r.state.Products)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
