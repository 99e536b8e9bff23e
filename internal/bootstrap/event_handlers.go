package bootstrap

import (
	"github.com/kabachok/lootcase/internal/event"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and, when a broker
// is connected, relays every economy event to it
func RegisterEventHandlers(sys *EventSystem) {
	metrics.NewEventMetricsCollector().Register(sys.Bus)
	logger.Info(LogMsgMetricsCollectorRegistered)

	if sys.BrokerPublisher != nil {
		event.Relay(sys.Bus, sys.BrokerPublisher, event.EconomyTypes...)
		logger.Info(LogMsgBrokerRelayRegistered, "types", len(event.EconomyTypes))
	}
}
