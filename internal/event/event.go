package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kabachok/lootcase/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Economy event types
const (
	CaseOpened       Type = domain.EventTypeCaseOpened
	ItemSold         Type = domain.EventTypeItemSold
	BalanceDeposited Type = domain.EventTypeBalanceDeposited
)

// EconomyTypes lists every event the economy service emits
var EconomyTypes = []Type{CaseOpened, ItemSold, BalanceDeposited}

// Type-safe event constructors

// NewCaseOpenedEvent creates a case.opened event
func NewCaseOpenedEvent(userID string, c *domain.Case, reward domain.Item, newBalance int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CaseOpened,
		Payload: domain.CaseOpenedPayload{
			UserID:     userID,
			CaseID:     c.ID,
			CaseName:   c.Name,
			Price:      c.Price,
			ItemID:     reward.ID,
			ItemName:   reward.Name,
			Rarity:     reward.Rarity,
			NewBalance: newBalance,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates an item.sold event
func NewItemSoldEvent(userID string, item domain.Item, newBalance int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: domain.ItemSoldPayload{
			UserID:     userID,
			ItemID:     item.ID,
			ItemName:   item.Name,
			Rarity:     item.Rarity,
			Value:      item.SellPrice,
			NewBalance: newBalance,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewBalanceDepositedEvent creates a balance.deposited event
func NewBalanceDepositedEvent(userID string, amount, newBalance int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BalanceDeposited,
		Payload: domain.BalanceDepositedPayload{
			UserID:     userID,
			Amount:     amount,
			NewBalance: newBalance,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher delivers an event to its destination
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
