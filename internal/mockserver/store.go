package mockserver

import (
	"sort"
	"sync"
)

const dataFolder = "data"

// Store is the in-memory state behind the mock server: chat memory per
// user, raw PDFs in the data folder and the sources ingested into the
// vector store.
type Store struct {
	mu      sync.Mutex
	memory  map[string][]string
	pdfs    map[string][]byte
	sources map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		memory:  make(map[string][]string),
		pdfs:    make(map[string][]byte),
		sources: make(map[string]struct{}),
	}
}

func (s *Store) AppendMemory(userID, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory[userID] = append(s.memory[userID], message)
}

func (s *Store) Users() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.memory)
}

func (s *Store) ClearMemory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory = make(map[string][]string)
}

func (s *Store) ClearUserMemory(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.memory[userID]; !ok {
		return false
	}
	delete(s.memory, userID)
	return true
}

func (s *Store) PutPDF(name string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pdfs[name] = content
}

func (s *Store) PDFs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.pdfs)
}

func (s *Store) DeletePDFs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := sortedKeys(s.pdfs)
	s.pdfs = make(map[string][]byte)
	return names
}

func (s *Store) DeletePDF(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pdfs[name]; !ok {
		return false
	}
	delete(s.pdfs, name)
	return true
}

// Ingest records the named PDFs as vector sources; an empty list ingests
// the whole data folder. Names not in the data folder are skipped.
func (s *Store) Ingest(names ...string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(names) == 0 {
		names = sortedKeys(s.pdfs)
	}

	var ingested []string
	for _, name := range names {
		if _, ok := s.pdfs[name]; !ok {
			continue
		}
		s.sources[sourcePath(name)] = struct{}{}
		ingested = append(ingested, name)
	}
	return ingested
}

// Sources returns ingested sources as the server reports them: paths
// inside the data folder.
func (s *Store) Sources() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.sources)
}

func (s *Store) ClearSources() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = make(map[string]struct{})
}

func (s *Store) ClearSource(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sourcePath(name)
	if _, ok := s.sources[key]; !ok {
		return false
	}
	delete(s.sources, key)
	return true
}

func sourcePath(name string) string {
	return dataFolder + "/" + name
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
