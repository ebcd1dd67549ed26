package sync

import (
	stdsync "sync"

	"go.trai.ch/pantry/internal/bus"
	"go.trai.ch/pantry/internal/cache"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Session tracks the signed-in user and tears the client state down on
// sign-out: every cache namespace, the session storage tier, and the open
// list subscription. Durable preferences survive; they belong to the list,
// not the session.
type Session struct {
	controller *Controller
	cache      *cache.Store
	session    ports.StorageTier
	bus        *bus.Bus
	logger     ports.Logger

	mu   stdsync.Mutex
	user *domain.Member
}

// NewSession creates a Session over the shared client state.
func NewSession(controller *Controller, cacheStore *cache.Store, sessionTier ports.StorageTier, eventBus *bus.Bus, logger ports.Logger) *Session {
	return &Session{
		controller: controller,
		cache:      cacheStore,
		session:    sessionTier,
		bus:        eventBus,
		logger:     logger,
	}
}

// SignIn records the signed-in user and announces the change.
func (s *Session) SignIn(user domain.Member) {
	s.mu.Lock()
	u := user
	s.user = &u
	s.mu.Unlock()

	s.bus.Emit(bus.EventUserChanged, bus.UserChangedPayload{SenderID: user.ID, User: &u})
}

// User returns the signed-in user, or nil.
func (s *Session) User() *domain.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SignOut closes the open list, clears every cache namespace and the
// session tier, and announces the sign-out. Storage failures are logged;
// the in-memory state is cleared regardless.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.controller.Close()
	s.cache.ClearAll()
	if err := s.session.Clear(); err != nil {
		s.logger.Error(zerr.Wrap(err, "session tier clear failed"))
	}

	s.bus.Emit(bus.EventUserChanged, bus.UserChangedPayload{})
}
