package models

// Product is a catalog entry. Fields other than ID are nullable: a create
// request that omits one stores null.
type Product struct {
	ID       string   `json:"_id"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

// ProductInput is the body of create and update requests.
// On update, nil fields leave the stored value untouched.
type ProductInput struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

func (in ProductInput) Empty() bool {
	return in.Name == nil && in.Price == nil && in.Category == nil
}

type DeleteProductResponse struct {
	Message        string   `json:"message"`
	DeletedProduct *Product `json:"deletedProduct"`
}
