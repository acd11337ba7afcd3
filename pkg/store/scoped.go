package store

// Scoped pairs the durable and session scopes. Reads fall back from durable
// to session; when both hold a value, durable wins. There is no merge logic
// across scopes.
type Scoped struct {
	Durable Store
	Session Store
}

// NewScoped builds a scope pair.
func NewScoped(durable, session Store) *Scoped {
	return &Scoped{Durable: durable, Session: session}
}

// Get reads durable first, then session.
func (s *Scoped) Get(key string) ([]byte, bool) {
	if raw, ok := s.Durable.Get(key); ok {
		return raw, true
	}
	return s.Session.Get(key)
}

// Set writes to the durable scope when remember is true, otherwise to the
// session scope.
func (s *Scoped) Set(key string, value []byte, remember bool) error {
	if remember {
		return s.Durable.Set(key, value)
	}
	return s.Session.Set(key, value)
}

// Remove clears the key from both scopes unconditionally.
func (s *Scoped) Remove(key string) {
	s.Durable.Remove(key)
	s.Session.Remove(key)
}
