package lootbox

import (
	"fmt"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/utils"
)

// Drawer selects one reward from a case's item pool.
type Drawer interface {
	Draw(items []domain.Item) (domain.Item, error)
	Odds(items []domain.Item) ([]Odds, error)
}

// Odds is the probability of drawing one item from a pool.
type Odds struct {
	ItemID      int64   `json:"item_id"`
	Weight      int     `json:"weight"`
	Probability float64 `json:"probability"`
}

// poolEntry is one item in a flattened pool.
type poolEntry struct {
	item        *domain.Item
	weight      int
	cumulWeight int // cumulative weight up to and including this entry
}

// pool is a set of items resolved to cumulative weights.
type pool struct {
	entries     []poolEntry
	totalWeight int
}

type drawer struct {
	rnd func() float64 // returns a value in [0, 1)
}

// NewDrawer creates a Drawer backed by rnd. A nil rnd uses utils.RandomFloat.
func NewDrawer(rnd func() float64) Drawer {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &drawer{rnd: rnd}
}

// Draw performs a single weighted draw. The input slice is not modified.
func (d *drawer) Draw(items []domain.Item) (domain.Item, error) {
	p, err := buildPool(items)
	if err != nil {
		return domain.Item{}, err
	}
	return *selectEntry(p, d.rnd()).item, nil
}

// Odds reports the draw probability of every item in input order.
func (d *drawer) Odds(items []domain.Item) ([]Odds, error) {
	p, err := buildPool(items)
	if err != nil {
		return nil, err
	}

	odds := make([]Odds, len(p.entries))
	for i, e := range p.entries {
		odds[i] = Odds{
			ItemID:      e.item.ID,
			Weight:      e.weight,
			Probability: float64(e.weight) / float64(p.totalWeight),
		}
	}
	return odds, nil
}

func buildPool(items []domain.Item) (*pool, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyPool
	}

	p := &pool{entries: make([]poolEntry, 0, len(items))}
	for i := range items {
		w := items[i].Rarity.Weight()
		if w <= 0 {
			return nil, fmt.Errorf(ErrMsgUnknownRarityFmt, domain.ErrInvalidRarity, items[i].Rarity, items[i].ID)
		}
		p.totalWeight += w
		p.entries = append(p.entries, poolEntry{
			item:        &items[i],
			weight:      w,
			cumulWeight: p.totalWeight,
		})
	}
	return p, nil
}

// selectEntry returns the entry chosen by a weighted roll in [0, totalWeight).
func selectEntry(p *pool, rnd float64) *poolEntry {
	roll := int(rnd * float64(p.totalWeight))
	if roll >= p.totalWeight {
		roll = p.totalWeight - 1
	}
	if roll < 0 {
		roll = 0
	}

	lo, hi := 0, len(p.entries)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if p.entries[mid].cumulWeight <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return &p.entries[lo]
}
