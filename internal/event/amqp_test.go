package event

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabachok/lootcase/internal/domain"
)

type publishedMsg struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	mu     sync.Mutex
	sent   []publishedMsg
	err    error
	closed bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, publishedMsg{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func (c *fakeChannel) messages() []publishedMsg {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]publishedMsg(nil), c.sent...)
}

func TestAMQPForwarder_Publish(t *testing.T) {
	ch := &fakeChannel{}
	f := NewAMQPForwarder(ch, "lootcase.events")

	evt := NewItemSoldEvent("user-1", domain.Item{ID: 2, Name: "Carrot", Rarity: domain.RarityUncommon, SellPrice: 15}, 65)
	require.NoError(t, f.Publish(context.Background(), evt))

	sent := ch.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "lootcase.events", sent[0].exchange)
	assert.Equal(t, string(ItemSold), sent[0].key)
	assert.Equal(t, AMQPContentType, sent[0].msg.ContentType)
	assert.Equal(t, amqp.Persistent, sent[0].msg.DeliveryMode)
	assert.NotEmpty(t, sent[0].msg.MessageId)
	assert.Equal(t, EventSchemaVersion, sent[0].msg.Headers[AMQPHeaderSchemaVersion])

	var body Event
	require.NoError(t, json.Unmarshal(sent[0].msg.Body, &body))
	assert.Equal(t, ItemSold, body.Type)

	payload, err := DecodePayload[domain.ItemSoldPayload](body.Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(65), payload.NewBalance)

	require.NoError(t, f.Close())
	assert.True(t, ch.closed)
}

func TestAMQPForwarder_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	f := NewAMQPForwarder(ch, "x")

	err := f.Publish(context.Background(), testEvent(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPublishAMQP)
}

func TestRelay_FailingBrokerDoesNotFailLocalBus(t *testing.T) {
	ch := &fakeChannel{err: errors.New("down")}
	rp, err := NewResilientPublisher(NewAMQPForwarder(ch, "x"), 1, time.Hour, deadLetterPath(t))
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	bus := NewMemoryBus()
	seen := 0
	bus.Subscribe(CaseOpened, func(context.Context, Event) error {
		seen++
		return nil
	})
	Relay(bus, rp, EconomyTypes...)

	c := &domain.Case{ID: 1, Name: "Box", Price: 10}
	err = bus.Publish(context.Background(), NewCaseOpenedEvent("u", c, domain.Item{ID: 1}, 0))

	assert.NoError(t, err)
	assert.Equal(t, 1, seen)
	assert.Empty(t, ch.messages())
}
