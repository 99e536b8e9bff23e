package metrics

import (
	"context"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/event"
	"github.com/kabachok/lootcase/internal/logger"
)

// EventMetricsCollector subscribes to economy events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every economy event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range event.EconomyTypes {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event. Malformed payloads are counted,
// never returned, so the bus keeps delivering to other subscribers.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CaseOpened:
		var p domain.CaseOpenedPayload
		if p, err = event.DecodePayload[domain.CaseOpenedPayload](evt.Payload); err == nil {
			CasesOpened.WithLabelValues(p.CaseName, string(p.Rarity)).Inc()
			CurrencySpent.Add(float64(p.Price))
		}

	case event.ItemSold:
		var p domain.ItemSoldPayload
		if p, err = event.DecodePayload[domain.ItemSoldPayload](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(p.ItemName).Inc()
			CurrencyEarned.Add(float64(p.Value))
		}

	case event.BalanceDeposited:
		var p domain.BalanceDepositedPayload
		if p, err = event.DecodePayload[domain.BalanceDepositedPayload](evt.Payload); err == nil {
			CurrencyDeposited.Add(float64(p.Amount))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
