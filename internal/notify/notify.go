// Package notify carries battle notifications over the rpg-toolkit event bus
// so that logging and terminal output subscribe instead of being hard-wired
// into the resolver.
package notify

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Event context keys
const (
	ContextKeyMessage   = "message"
	ContextKeyRecipient = "recipient_id"
	ContextKeyEvent     = "battle_event"
)

const (
	eventTypePrefix = "battle."

	// EventTypeMessage is used for notifications that carry no battle event
	EventTypeMessage = eventTypePrefix + "message"
)

// EventType maps a resolver event kind to a bus event type
func EventType(kind engine.EventKind) string {
	return eventTypePrefix + string(kind)
}

// EventTypes lists every bus event type a battle publishes
func EventTypes() []string {
	return []string{
		EventType(engine.EventSwapped),
		EventType(engine.EventAttacked),
		EventType(engine.EventSkipped),
		EventType(engine.EventFainted),
		EventType(engine.EventReplaced),
		EventType(engine.EventBattleEnded),
		EventTypeMessage,
	}
}

// BusConfig holds the dependencies for a BusNotifier
type BusConfig struct {
	Bus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *BusConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	return vb.Build()
}

// BusNotifier publishes notifications as toolkit game events
type BusNotifier struct {
	bus events.EventBus
}

// Ensure BusNotifier implements engine.Notifier
var _ engine.Notifier = (*BusNotifier)(nil)

// NewBusNotifier creates a notifier that publishes on the given bus
func NewBusNotifier(cfg *BusConfig) (*BusNotifier, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &BusNotifier{bus: cfg.Bus}, nil
}

// Notify publishes n. Publish failures are logged, never returned, since
// notifications are observational.
func (b *BusNotifier) Notify(ctx context.Context, n *engine.Notification) {
	if n == nil {
		return
	}

	eventType := EventTypeMessage
	var source, target core.Entity
	if n.Event != nil {
		eventType = EventType(n.Event.Kind)
		if n.Event.Actor != nil {
			source = n.Event.Actor
		}
		if n.Event.Target != nil {
			target = n.Event.Target
		} else if n.Event.Creature != nil {
			target = n.Event.Creature
		}
	}

	evt := events.NewGameEvent(eventType, source, target)
	evt.Context().Set(ContextKeyMessage, n.Message)
	if n.Recipient != nil {
		evt.Context().Set(ContextKeyRecipient, n.Recipient.ID)
	}
	if n.Event != nil {
		evt.Context().Set(ContextKeyEvent, n.Event)
	}

	if err := b.bus.Publish(ctx, evt); err != nil {
		slog.Warn("Failed to publish battle notification",
			"event_type", eventType,
			"error", err,
		)
	}
}

// Message extracts the notification text from a bus event
func Message(evt events.Event) string {
	v, ok := evt.Context().Get(ContextKeyMessage)
	if !ok {
		return ""
	}
	msg, _ := v.(string)
	return msg
}

// RecipientID extracts the addressed actor id; empty means broadcast
func RecipientID(evt events.Event) string {
	v, ok := evt.Context().Get(ContextKeyRecipient)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// BattleEvent extracts the resolver event, if any
func BattleEvent(evt events.Event) *engine.Event {
	v, ok := evt.Context().Get(ContextKeyEvent)
	if !ok {
		return nil
	}
	e, _ := v.(*engine.Event)
	return e
}
