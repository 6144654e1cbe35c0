// Package actors provides the engine.Controller implementations that pick
// actions for each side of a battle: a menu-driven human and a random bot.
package actors

import "context"

//go:generate mockgen -destination=mock/mock_prompter.go -package=actorsmock github.com/KirkDiggler/rpg-battle/internal/actors Prompter

// Prompter blocks until one of options is selected and returns its index
type Prompter interface {
	Choose(ctx context.Context, title string, options []string) (int, error)
}
