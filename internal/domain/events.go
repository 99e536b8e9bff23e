package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeCaseOpened is published after an open transaction commits
	EventTypeCaseOpened = "case.opened"

	// EventTypeItemSold is published after a sell transaction commits
	EventTypeItemSold = "item.sold"

	// EventTypeBalanceDeposited is published after a deposit commits
	EventTypeBalanceDeposited = "balance.deposited"
)

// CaseOpenedPayload describes a committed case opening.
type CaseOpenedPayload struct {
	UserID     string `json:"user_id"`
	CaseID     int64  `json:"case_id"`
	CaseName   string `json:"case_name"`
	Price      int64  `json:"price"`
	ItemID     int64  `json:"item_id"`
	ItemName   string `json:"item_name"`
	Rarity     Rarity `json:"rarity"`
	NewBalance int64  `json:"new_balance"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemSoldPayload describes a committed sale of one unit.
type ItemSoldPayload struct {
	UserID     string `json:"user_id"`
	ItemID     int64  `json:"item_id"`
	ItemName   string `json:"item_name"`
	Rarity     Rarity `json:"rarity"`
	Value      int64  `json:"value"`
	NewBalance int64  `json:"new_balance"`
	Timestamp  int64  `json:"timestamp"`
}

// BalanceDepositedPayload describes a committed deposit.
type BalanceDepositedPayload struct {
	UserID     string `json:"user_id"`
	Amount     int64  `json:"amount"`
	NewBalance int64  `json:"new_balance"`
	Timestamp  int64  `json:"timestamp"`
}
