package storage

import (
	"context"
	"sync"
)

// StubRemoteStore is an in-memory RemoteStore for tests. Saves may arrive
// from fire-and-forget goroutines, so access is guarded.
type StubRemoteStore struct {
	mu      sync.Mutex
	records map[string][]byte
	LoadErr error
	SaveErr error
	saves   int
}

func NewStubRemoteStore() *StubRemoteStore {
	return &StubRemoteStore{records: map[string][]byte{}}
}

func (s *StubRemoteStore) Load(ctx context.Context, userUid string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	doc, ok := s.records[userUid]
	if !ok {
		return nil, false, nil
	}
	return doc, true, nil
}

func (s *StubRemoteStore) Save(ctx context.Context, userUid string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.records[userUid] = append([]byte(nil), doc...)
	s.saves++
	return nil
}

// Seed stores a record as if a previous session had synced it.
func (s *StubRemoteStore) Seed(userUid string, doc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userUid] = append([]byte(nil), doc...)
}

// Record returns the stored document for a user.
func (s *StubRemoteStore) Record(userUid string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.records[userUid]
	return doc, ok
}

// Saves returns how many times Save succeeded.
func (s *StubRemoteStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *StubRemoteStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = map[string][]byte{}
	s.saves = 0
	s.LoadErr = nil
	s.SaveErr = nil
}
