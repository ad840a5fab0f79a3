package domain

// MenuItem belongs to exactly one restaurant. Only available items are
// orderable or visible on the public menu.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}
