package battlerecord

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// InMemoryRepository implements Repository for runs without Redis
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.BattleResult
	order []string
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.BattleResult),
	}
}

// Save stores a copy of the result. Saving an id again replaces the record
// and makes it the most recent.
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Result.ID]; exists {
		r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == input.Result.ID })
	}
	r.order = append(r.order, input.Result.ID)
	r.store[input.Result.ID] = copyResult(input.Result)

	return &SaveOutput{Result: input.Result}, nil
}

// Get retrieves a battle result by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("battle %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Result: copyResult(result)}, nil
}

// ListRecent returns the most recently saved battles, newest first
func (r *InMemoryRepository) ListRecent(_ context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	limit := listLimit(input)

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*entities.BattleResult, 0, min(limit, len(r.order)))
	for i := len(r.order) - 1; i >= 0 && len(results) < limit; i-- {
		results = append(results, copyResult(r.store[r.order[i]]))
	}
	return &ListRecentOutput{Results: results}, nil
}

func copyResult(in *entities.BattleResult) *entities.BattleResult {
	out := *in
	out.Survivors = append([]entities.CreatureSummary(nil), in.Survivors...)
	return &out
}
