package service

import (
	"context"
	"sort"
	"sync"

	"github.com/kulsum-786/student-disengagement-prediction/internals/features/records/model"
)

// MemoryStore is an in-memory RecordStore with the same upsert semantics as
// the Mongo adapter. Used in tests and when running without a database.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[int]model.RiskRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[int]model.RiskRecord)}
}

func (s *MemoryStore) Upsert(_ context.Context, rec model.RiskRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.StudentID] = rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context, studentID int) (model.RiskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[studentID]
	if !ok {
		return model.RiskRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryStore) List(_ context.Context) ([]model.RiskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]model.RiskRecord, 0, len(s.recs))
	for _, rec := range s.recs {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].StudentID < recs[j].StudentID })
	return recs, nil
}
