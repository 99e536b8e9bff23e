package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kabachok/lootcase/internal/logger"
)

// amqpChannel is the subset of *amqp.Channel the forwarder needs
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPForwarder publishes events to a RabbitMQ topic exchange, routed by event type
type AMQPForwarder struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

// DialAMQP connects to the broker and declares a durable topic exchange
func DialAMQP(url, exchange string) (*AMQPForwarder, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDialAMQP, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenAMQPChannel, err)
	}

	if err := ch.ExchangeDeclare(exchange, AMQPExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s %q: %w", ErrMsgDeclareExchange, exchange, err)
	}

	logger.Info(LogMsgBrokerConnected, "exchange", exchange)
	return &AMQPForwarder{conn: conn, channel: ch, exchange: exchange}, nil
}

// NewAMQPForwarder wraps an already-open channel
func NewAMQPForwarder(ch amqpChannel, exchange string) *AMQPForwarder {
	return &AMQPForwarder{channel: ch, exchange: exchange}
}

// Publish sends one event as a persistent JSON message
func (f *AMQPForwarder) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalEvent, err)
	}

	err = f.channel.PublishWithContext(ctx, f.exchange, string(evt.Type), false, false, amqp.Publishing{
		ContentType:  AMQPContentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now(),
		Type:         string(evt.Type),
		Headers:      amqp.Table{AMQPHeaderSchemaVersion: evt.Version},
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPublishAMQP, err)
	}

	logger.FromContext(ctx).Debug(LogMsgEventForwarded, "event_type", evt.Type, "exchange", f.exchange)
	return nil
}

// Close closes the channel and, when owned, the connection
func (f *AMQPForwarder) Close() error {
	err := f.channel.Close()
	if f.conn != nil {
		if cerr := f.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Relay subscribes to types on bus and hands each event to target.
// Delivery failures are retried by target, never reported back to bus, so
// other subscribers on bus see each event exactly once.
func Relay(bus Bus, target *ResilientPublisher, types ...Type) {
	for _, t := range types {
		bus.Subscribe(t, func(ctx context.Context, evt Event) error {
			target.PublishWithRetry(ctx, evt)
			return nil
		})
	}
}
