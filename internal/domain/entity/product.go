package entity

// Product is a sellable cylinder type. Rate defaults to 0 when the stored
// record has no rate field.
type Product struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Rate      int    `json:"rate,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Category  string `json:"category,omitempty"`
}

func (p Product) DisplayName() string {
	return p.Name
}
