// Package engine resolves a single battle turn: swaps first, then attacks in
// speed order, with damage, faint and forced-swap handling.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-battle/internal/engine TurnResolver,Controller,Notifier

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// TurnResolver applies one queued action per actor for a single turn
type TurnResolver interface {
	ResolveTurn(ctx context.Context, input *TurnInput) (*TurnOutcome, error)
}

// Controller makes the choices for one actor. For a human it blocks on a
// prompt; a scripted actor answers immediately from its policy.
type Controller interface {
	// ChooseAction picks the action to queue for this turn
	ChooseAction(ctx context.Context, self, opponent *entities.Actor) (entities.Action, error)

	// ChooseReplacement picks a healthy bench creature after the active one fainted
	ChooseReplacement(ctx context.Context, self *entities.Actor) (*entities.Creature, error)
}

// Notifier receives battle messages. It is purely observational and is only
// ever called after the state change it describes.
type Notifier interface {
	Notify(ctx context.Context, n *Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, n *Notification)

// Notify implements Notifier
func (f NotifierFunc) Notify(ctx context.Context, n *Notification) {
	f(ctx, n)
}

// Discard is a Notifier that drops everything
var Discard Notifier = NotifierFunc(func(context.Context, *Notification) {})
