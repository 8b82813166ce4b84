package models

// Product is the canonical offer record produced by every provider.
type Product struct {
	Title        string  `json:"title"`
	PriceDisplay string  `json:"price"`
	PriceAmount  float64 `json:"extracted_price"`
	Link         string  `json:"link"`
	Image        string  `json:"image"`
	Source       string  `json:"source"`
	Logo         string  `json:"logo"`
	Delivery     string  `json:"delivery"`
}

// HasPrice reports whether the product carries a usable numeric price.
func (p Product) HasPrice() bool {
	return p.PriceAmount > 0
}
