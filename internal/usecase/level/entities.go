package level

type UpdatePriceInput struct {
	Price *float64 `json:"price"`
}
