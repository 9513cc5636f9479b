package workflow

import "sync"

// State is a thread-safe key-value store shared between workflow steps.
// Steps read their inputs from state and write their outputs back so
// later steps can build on earlier results.
type State struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewState creates an empty state.
func NewState() *State {
	return &State{data: make(map[string]any)}
}

// NewStateFrom creates a state seeded with the given values.
func NewStateFrom(values map[string]any) *State {
	s := NewState()
	for k, v := range values {
		s.data[k] = v
	}
	return s
}

// Get returns the value for key and whether it exists.
func (s *State) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// GetString returns the string value for key, or "" if absent or not a string.
func (s *State) GetString(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// GetInt returns the int value for key, or 0 if absent or not an int.
func (s *State) GetInt(key string) int {
	v, ok := s.Get(key)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// GetBool returns the bool value for key, or false if absent or not a bool.
func (s *State) GetBool(key string) bool {
	v, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Set stores a value under key.
func (s *State) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Delete removes key from the state.
func (s *State) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Has reports whether key exists.
func (s *State) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Keys returns all keys currently in the state.
func (s *State) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Clone returns a shallow copy of the state.
func (s *State) Clone() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := NewState()
	for k, v := range s.data {
		clone.data[k] = v
	}
	return clone
}

// Merge copies all entries from other into this state, overwriting
// existing keys.
func (s *State) Merge(other *State) {
	if other == nil {
		return
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range other.data {
		s.data[k] = v
	}
}

// Len returns the number of entries.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
