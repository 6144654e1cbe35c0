package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Subscriptions tracks bus subscription ids so they can be released together
type Subscriptions struct {
	bus events.EventBus
	ids []string
}

// Close unsubscribes everything
func (s *Subscriptions) Close() error {
	var firstErr error
	for _, id := range s.ids {
		if err := s.bus.Unsubscribe(id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.ids = nil
	return firstErr
}

func subscribeAll(bus events.EventBus, priority int, fn events.HandlerFunc) *Subscriptions {
	subs := &Subscriptions{bus: bus}
	for _, t := range EventTypes() {
		subs.ids = append(subs.ids, bus.SubscribeFunc(t, priority, fn))
	}
	return subs
}

// SubscribeLogger writes every battle event to logger at debug level
func SubscribeLogger(bus events.EventBus, logger *slog.Logger) *Subscriptions {
	return subscribeAll(bus, 0, func(ctx context.Context, evt events.Event) error {
		attrs := []any{
			"event_type", evt.Type(),
			"message", Message(evt),
		}
		if e := BattleEvent(evt); e != nil {
			attrs = append(attrs, "turn", e.Turn)
			if e.Damage != nil {
				attrs = append(attrs,
					"damage", e.Damage.Final,
					"multiplier", e.Damage.Multiplier,
				)
			}
		}
		if id := RecipientID(evt); id != "" {
			attrs = append(attrs, "recipient_id", id)
		}
		logger.DebugContext(ctx, "Battle event", attrs...)
		return nil
	})
}

// SubscribeWriter prints broadcast messages and messages addressed to
// recipientID, one per line
func SubscribeWriter(bus events.EventBus, w io.Writer, recipientID string) *Subscriptions {
	return subscribeAll(bus, 10, func(_ context.Context, evt events.Event) error {
		if id := RecipientID(evt); id != "" && id != recipientID {
			return nil
		}
		msg := Message(evt)
		if msg == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, msg)
		return err
	})
}
