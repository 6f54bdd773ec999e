package repository

import (
	"context"
	"sync"

	"govbr_pagamentos/internal/domain/entities"
	"govbr_pagamentos/internal/usecase/interfaces"
)

// IntentMemoryRepository keeps PaymentIntent records in process memory.
//
// This is the default store. Records are never evicted; memory grows with
// the number of intents for the process lifetime, matching the documented
// retention behavior. Critical sections are short and never include gateway
// calls, so a single mutex over the map is enough to make every
// single-record operation atomic.
type IntentMemoryRepository struct {
	mu      sync.RWMutex
	intents map[string]entities.PaymentIntent
}

var _ interfaces.IIntentRepository = (*IntentMemoryRepository)(nil)

func NewIntentMemoryRepository() *IntentMemoryRepository {
	return &IntentMemoryRepository{intents: make(map[string]entities.PaymentIntent)}
}

func (r *IntentMemoryRepository) Put(_ context.Context, p entities.PaymentIntent) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.intents[p.ID]; exists {
		return entities.PaymentIntent{}, interfaces.ErrDuplicateIntentID
	}
	r.intents[p.ID] = p
	return p, nil
}

func (r *IntentMemoryRepository) GetByID(_ context.Context, id string) (entities.PaymentIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.intents[id], nil
}

func (r *IntentMemoryRepository) CompareAndTransition(_ context.Context, id string, expected, next entities.IntentStatus, mutate interfaces.IntentMutator) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.intents[id]
	if !exists {
		return entities.PaymentIntent{}, nil
	}
	if current.Status != expected {
		// Lost the race (or nothing to do). Report what is there now.
		return current, nil
	}

	updated := current
	if mutate != nil {
		mutate(&updated)
	}
	updated.Status = next
	r.intents[id] = updated
	return updated, nil
}

func (r *IntentMemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.intents), nil
}
