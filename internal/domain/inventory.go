package domain

// Account holds a user's virtual currency balance.
type Account struct {
	UserID  string `json:"user_id" db:"user_id"`
	Balance int64  `json:"balance" db:"balance"`
}

// InventoryEntry is a stacked holding of one item by one user.
// Quantity is always at least 1; a stack that reaches zero is deleted.
type InventoryEntry struct {
	ID       int64  `json:"id" db:"entry_id"`
	UserID   string `json:"user_id" db:"user_id"`
	ItemID   int64  `json:"item_id" db:"item_id"`
	Quantity int    `json:"quantity" db:"quantity"`
	Item     *Item  `json:"vegetable,omitempty"`
}

// Profile is a user's balance together with everything they hold.
type Profile struct {
	UserID    string           `json:"user_id"`
	Balance   int64            `json:"balance"`
	Inventory []InventoryEntry `json:"inventory"`
}
