package handler

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/economy"
)

// RewardView is an item as presented to players
type RewardView struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Emoji         string        `json:"emoji,omitempty"`
	Description   string        `json:"description,omitempty"`
	Rarity        domain.Rarity `json:"rarity"`
	RarityDisplay string        `json:"rarity_display"`
	Price         int64         `json:"price"`
}

// CaseView is a case with its contents
type CaseView struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Price       int64        `json:"price"`
	Items       []RewardView `json:"vegetables"`
}

// OddsView is one row of a case's drop table
type OddsView struct {
	RewardView
	Weight      int     `json:"weight"`
	Probability float64 `json:"probability"`
}

// CaseOddsResponse is the drop table of a case
type CaseOddsResponse struct {
	Case CaseView   `json:"case"`
	Odds []OddsView `json:"odds"`
}

// InventoryEntryView is one stack in a profile
type InventoryEntryView struct {
	ID       int64       `json:"id"`
	Quantity int         `json:"quantity"`
	Item     *RewardView `json:"vegetable,omitempty"`
}

// ProfileResponse is the caller's balance and inventory
type ProfileResponse struct {
	UserID    string               `json:"user_id"`
	Balance   int64                `json:"balance"`
	Inventory []InventoryEntryView `json:"inventory"`
}

// rarityDisplay title-cases a tier for presentation ("legendary" -> "Legendary").
// Casers are stateful, so one is built per call.
func rarityDisplay(r domain.Rarity) string {
	return cases.Title(language.English).String(string(r))
}

func newRewardView(item domain.Item) RewardView {
	return RewardView{
		ID:            item.ID,
		Name:          item.Name,
		Emoji:         item.Emoji,
		Description:   item.Description,
		Rarity:        item.Rarity,
		RarityDisplay: rarityDisplay(item.Rarity),
		Price:         item.SellPrice,
	}
}

func newCaseView(c domain.Case) CaseView {
	items := make([]RewardView, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, newRewardView(item))
	}
	return CaseView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Price:       c.Price,
		Items:       items,
	}
}

func newCaseOddsResponse(odds *economy.CaseOdds) CaseOddsResponse {
	byID := make(map[int64]domain.Item, len(odds.Case.Items))
	for _, item := range odds.Case.Items {
		byID[item.ID] = item
	}

	rows := make([]OddsView, 0, len(odds.Odds))
	for _, o := range odds.Odds {
		rows = append(rows, OddsView{
			RewardView:  newRewardView(byID[o.ItemID]),
			Weight:      o.Weight,
			Probability: o.Probability,
		})
	}
	return CaseOddsResponse{Case: newCaseView(*odds.Case), Odds: rows}
}

func newProfileResponse(p *domain.Profile) ProfileResponse {
	entries := make([]InventoryEntryView, 0, len(p.Inventory))
	for _, e := range p.Inventory {
		view := InventoryEntryView{ID: e.ID, Quantity: e.Quantity}
		if e.Item != nil {
			item := newRewardView(*e.Item)
			view.Item = &item
		}
		entries = append(entries, view)
	}
	return ProfileResponse{UserID: p.UserID, Balance: p.Balance, Inventory: entries}
}
