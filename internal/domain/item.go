package domain

import "strings"

// Rarity is the fixed tier of an item. It alone decides how often the item
// is drawn from a case.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every tier from most to least common.
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

// ParseRarity normalizes a stored or configured rarity string.
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRarity
	}
	return r, nil
}

// Valid reports whether r is one of the five known tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Item is an obtainable virtual good. Items are immutable at runtime.
type Item struct {
	ID          int64  `json:"id" db:"item_id"`
	Name        string `json:"name" db:"name"`
	Emoji       string `json:"emoji" db:"emoji"`
	Description string `json:"description" db:"description"`
	Rarity      Rarity `json:"rarity" db:"rarity"`
	SellPrice   int64  `json:"price" db:"sell_price"`
}

// Display returns the emoji-prefixed name shown to players.
func (i Item) Display() string {
	if i.Emoji == "" {
		return i.Name
	}
	return i.Emoji + " " + i.Name
}
