package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kabachok/lootcase/internal/config"
	"github.com/kabachok/lootcase/internal/event"
	"github.com/kabachok/lootcase/internal/logger"
)

// EventSystem is the in-process bus plus the optional broker forwarder.
// Publisher wraps the bus and is what services publish through.
type EventSystem struct {
	Bus       *event.MemoryBus
	Publisher *event.ResilientPublisher

	// Broker and BrokerPublisher are nil when no broker is configured or reachable
	Broker          *event.AMQPForwarder
	BrokerPublisher *event.ResilientPublisher
}

// InitializeEventSystem creates the event bus and its resilient publisher and,
// when cfg.AMQPURL is set, connects the broker forwarder. A broker that cannot
// be reached at startup is logged and skipped.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}

	// Ensure dead-letter directory exists
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	sys := &EventSystem{Bus: bus, Publisher: publisher}

	if cfg.AMQPURL == "" {
		logger.Info(LogMsgBrokerDisabled)
	} else if broker, err := event.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange); err != nil {
		logger.Warn(LogMsgBrokerUnavailable, "error", err)
	} else {
		brokerPublisher, err := event.NewResilientPublisher(broker, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath+BrokerDeadLetterSuffix)
		if err != nil {
			_ = broker.Close()
			_ = publisher.Shutdown(context.Background())
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
		}
		sys.Broker = broker
		sys.BrokerPublisher = brokerPublisher
	}

	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath,
		"broker", sys.Broker != nil)

	return sys, nil
}

// Shutdown flushes the local publisher, then the broker publisher, then
// closes the broker connection
func (s *EventSystem) Shutdown(ctx context.Context) {
	logger.Info(LogMsgShuttingDownEventPublisher)
	if err := s.Publisher.Shutdown(ctx); err != nil {
		logger.Error(LogMsgResilientPublisherFailed, "error", err)
	}
	if s.BrokerPublisher != nil {
		if err := s.BrokerPublisher.Shutdown(ctx); err != nil {
			logger.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}
	if s.Broker != nil {
		if err := s.Broker.Close(); err != nil {
			logger.Warn(LogMsgBrokerCloseFailed, "error", err)
		}
	}
}
