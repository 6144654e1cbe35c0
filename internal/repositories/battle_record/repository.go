// Package battlerecord stores the results of finished battles
package battlerecord

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=battlerecordmock github.com/KirkDiggler/rpg-battle/internal/repositories/battle_record Repository

// DefaultListLimit is used when ListRecentInput.Limit is zero
const DefaultListLimit = 10

// SaveInput contains parameters for recording a battle
type SaveInput struct {
	Result *entities.BattleResult
}

// SaveOutput contains the result of recording a battle
type SaveOutput struct {
	Result *entities.BattleResult
}

// GetInput contains parameters for retrieving a battle result
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved battle result
type GetOutput struct {
	Result *entities.BattleResult
}

// ListRecentInput contains parameters for listing recent battles
type ListRecentInput struct {
	Limit int
}

// ListRecentOutput contains recent battles, newest first
type ListRecentOutput struct {
	Results []*entities.BattleResult
}

// Repository defines the interface for battle history storage
type Repository interface {
	// Save records a finished battle
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a battle result by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// ListRecent returns the most recent battles, newest first
	ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error)
}

func validateSave(input *SaveInput) error {
	if input == nil || input.Result == nil {
		return errors.InvalidArgument("result cannot be nil")
	}
	if input.Result.ID == "" {
		return errors.InvalidArgument("result ID cannot be empty")
	}
	return nil
}

func listLimit(input *ListRecentInput) int {
	if input == nil || input.Limit <= 0 {
		return DefaultListLimit
	}
	return input.Limit
}
