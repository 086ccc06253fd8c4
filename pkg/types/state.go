package types

// AppState is the root aggregate: every material, every product, and the
// current selection. It is persisted as a single document; partial saves do
// not exist.
type AppState struct {
	Materials           []Material `json:"materials"`
	Products            []Product  `json:"products"`
	SelectedProductCode string     `json:"selectedProductCode"`
}

// NewAppState returns an empty state with non-nil collections.
func NewAppState() *AppState {
	return &AppState{
		Materials: []Material{},
		Products:  []Product{},
	}
}

// FindMaterial returns the material with the given code, or nil.
func (s *AppState) FindMaterial(code string) *Material {
	for i := range s.Materials {
		if s.Materials[i].Code == code {
			return &s.Materials[i]
		}
	}
	return nil
}

// FindProduct returns the product with the given code, or nil.
func (s *AppState) FindProduct(code string) *Product {
	for i := range s.Products {
		if s.Products[i].Code == code {
			return &s.Products[i]
		}
	}
	return nil
}

// SelectedProduct resolves the current selection. A selection that no
// longer matches a product is treated as no selection, never a failure.
func (s *AppState) SelectedProduct() *Product {
	if s.SelectedProductCode == "" {
		return nil
	}
	return s.FindProduct(s.SelectedProductCode)
}

// Reset empties the state back to its defaults.
func (s *AppState) Reset() {
	s.Materials = []Material{}
	s.Products = []Product{}
	s.SelectedProductCode = ""
}
