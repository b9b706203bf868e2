package storage

// StubLocalStore is an in-memory LocalStore for tests.
type StubLocalStore struct {
	doc      []byte
	hasDoc   bool
	ReadErr  error
	WriteErr error
	Writes   int
}

func NewStubLocalStore() *StubLocalStore {
	return &StubLocalStore{}
}

func (s *StubLocalStore) Read() ([]byte, bool, error) {
	if s.ReadErr != nil {
		return nil, false, s.ReadErr
	}
	if !s.hasDoc {
		return nil, false, nil
	}
	return s.doc, true, nil
}

func (s *StubLocalStore) Write(doc []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.doc = append([]byte(nil), doc...)
	s.hasDoc = true
	s.Writes++
	return nil
}

// Seed preloads a document as if it had been written in a previous run.
func (s *StubLocalStore) Seed(doc []byte) {
	s.doc = append([]byte(nil), doc...)
	s.hasDoc = true
}

// Document returns the last written document.
func (s *StubLocalStore) Document() []byte {
	return s.doc
}

func (s *StubLocalStore) Cleanup() {
	s.doc = nil
	s.hasDoc = false
	s.Writes = 0
}
