package domain

// Case is a purchasable bundle that yields one of its items when opened.
type Case struct {
	ID          int64  `json:"id" db:"case_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	ImageURL    string `json:"image_url" db:"image_url"`
	Price       int64  `json:"price" db:"open_price"`
	IsActive    bool   `json:"is_active" db:"is_active"`
	Items       []Item `json:"vegetables"`
}

// Openable reports whether the case can be opened by a player right now.
func (c *Case) Openable() bool {
	return c != nil && c.IsActive && len(c.Items) > 0
}
