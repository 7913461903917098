package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CartItemAdded   = "cart.item.added"
	CartItemUpdated = "cart.item.updated"
	CartItemRemoved = "cart.item.removed"
	CartCleared     = "cart.cleared"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, []byte) error { return nil }

type CartEvent struct {
	SessionID  string          `json:"sessionId"`
	ProductID  int             `json:"productId,omitempty"`
	Quantity   int             `json:"quantity,omitempty"`
	ItemCount  int             `json:"itemCount"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// Notifier publishes cart events on a best-effort basis: failures are logged
// and never reach the caller.
type Notifier struct {
	pub Publisher
	log *slog.Logger
}

func NewNotifier(pub Publisher, log *slog.Logger) *Notifier {
	if pub == nil {
		pub = Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{pub: pub, log: log}
}

func (n *Notifier) Cart(ctx context.Context, key string, ev CartEvent) {
	if n == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(ev)
	if err != nil {
		n.log.Error("marshal cart event", slog.String("key", key), slog.Any("err", err))
		return
	}
	if err := n.pub.Publish(ctx, key, body); err != nil {
		n.log.Warn("publish cart event failed", slog.String("key", key), slog.Any("err", err))
	}
}
