package cache

import "time"

// SetNow overrides the store's clock. Test-only.
func (s *Store) SetNow(now func() time.Time) {
	s.now = now
}
