package entities

// Product and ProductVariant are the slice of the catalog the checkout
// validation needs. Catalog management itself lives elsewhere.
type Product struct {
	ID   string
	Name string
}

type ProductVariant struct {
	ID        string
	ProductID string
	SKU       string
	Price     int
	Stock     int
	Weight    int
}
