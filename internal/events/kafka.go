package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

const TopicOrderPaid = `photomarket.order-paid`

// OrderPaidEvent is published once per settled order so downstream consumers
// (download granting, payout reporting) can react without polling the DB.
type OrderPaidEvent struct {
	OrderID         int64     `json:"order_id"`
	BuyerID         int64     `json:"buyer_id"`
	AlbumID         int64     `json:"album_id"`
	PhotographerID  int64     `json:"photographer_id"`
	GrossCents      int64     `json:"gross_cents"`
	CommissionCents int64     `json:"commission_cents"`
	PaidAt          time.Time `json:"paid_at"`
}

type Producer struct {
	client *kgo.Client
}

func NewProducer(brokers []string) (*Producer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
	)
	if err != nil {
		return nil, err
	}
	return &Producer{client: client}, nil
}

func (p *Producer) PublishOrderPaid(ctx context.Context, ev OrderPaidEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	record := &kgo.Record{
		Topic: TopicOrderPaid,
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: data,
	}
	return p.client.ProduceSync(ctx, record).FirstErr()
}

func (p *Producer) Close() {
	p.client.Close()
}
