package lootbox

// Error messages
const (
	ErrMsgUnknownRarityFmt = "%w: %q on item %d"
)
