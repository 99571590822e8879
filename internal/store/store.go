package store

import (
	"sort"
	"sync"

	"call-intelligence-go/internal/types"
)

// Store keeps terminal call records. A key is written at most once.
type Store interface {
	InsertIfAbsent(callID string, rec types.CallRecord) bool
	Get(callID string) (types.CallRecord, bool)
	MarkFailed(callID, reason string)
	Failure(callID string) (string, bool)
	List() []types.CallRecord
}

// Memory is a process-lifetime store. Nothing is evicted.
type Memory struct {
	mu       sync.RWMutex
	records  map[string]types.CallRecord
	failures map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		records:  make(map[string]types.CallRecord),
		failures: make(map[string]string),
	}
}

// InsertIfAbsent reports whether the record was stored.
func (s *Memory) InsertIfAbsent(callID string, rec types.CallRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[callID]; ok {
		return false
	}
	if _, ok := s.failures[callID]; ok {
		return false
	}
	s.records[callID] = rec
	return true
}

func (s *Memory) Get(callID string) (types.CallRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[callID]
	return rec, ok
}

// MarkFailed is ignored for ids that already hold a record or a failure.
func (s *Memory) MarkFailed(callID, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[callID]; ok {
		return
	}
	if _, ok := s.failures[callID]; ok {
		return
	}
	s.failures[callID] = reason
}

func (s *Memory) Failure(callID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reason, ok := s.failures[callID]
	return reason, ok
}

// List returns all records ordered by call id.
func (s *Memory) List() []types.CallRecord {
	s.mu.RLock()
	out := make([]types.CallRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CallID < out[j].CallID })
	return out
}
