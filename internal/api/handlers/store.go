package handlers

import (
	"sync"

	"github.com/google/uuid"

	"sgm-simulator/internal/api/models"
)

// storedRun keeps a finished run in memory so its trajectory can be
// fetched separately from the summary.
type storedRun struct {
	Summary    models.Summary
	Trajectory []models.PeriodRow
}

// ResultStore is an in-memory, id-keyed store of finished runs.
type ResultStore struct {
	mu   sync.RWMutex
	runs map[string]storedRun
}

func NewResultStore() *ResultStore {
	return &ResultStore{runs: make(map[string]storedRun)}
}

func (s *ResultStore) Put(run storedRun) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.runs[id] = run
	s.mu.Unlock()
	return id
}

func (s *ResultStore) Get(id string) (storedRun, bool) {
	s.mu.RLock()
	run, ok := s.runs[id]
	s.mu.RUnlock()
	return run, ok
}
