package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

type Publisher struct {
	writer messageWriter
}

func NewPublisher(brokers string, topic string) (*Publisher, error) {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w}, nil
}

func (p *Publisher) Publish(ctx context.Context, key, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

type InventoryRefresh struct {
	Reason      string    `json:"reason"`
	ProductIDs  []int     `json:"productIds"`
	RequestedAt time.Time `json:"requestedAt"`
}

// InventoryPublisher asks the fulfillment side to recompute orders waiting on
// stock by publishing an InventoryRefresh.
type InventoryPublisher struct {
	p   *Publisher
	now func() time.Time
}

func NewInventoryPublisher(p *Publisher) *InventoryPublisher {
	return &InventoryPublisher{p: p, now: func() time.Time { return time.Now().UTC() }}
}

func (i *InventoryPublisher) RefreshInventoryQueue(ctx context.Context, reason string, productIDs []int) error {
	b, err := json.Marshal(InventoryRefresh{Reason: reason, ProductIDs: productIDs, RequestedAt: i.now()})
	if err != nil {
		return err
	}
	return i.p.Publish(ctx, []byte(reason), b)
}
