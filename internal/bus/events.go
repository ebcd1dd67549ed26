package bus

import "go.trai.ch/pantry/internal/core/domain"

// Events exchanged between components.
const (
	// EventComponentReady announces that a component registered on the bus.
	EventComponentReady Event = "component:ready"
	// EventGroupChanged announces that the active group changed.
	EventGroupChanged Event = "group:changed"
	// EventUserChanged announces that the signed-in user changed.
	EventUserChanged Event = "user:changed"
)

// ComponentReadyPayload accompanies EventComponentReady.
type ComponentReadyPayload struct {
	ComponentID string
}

// GroupChangedPayload accompanies EventGroupChanged.
type GroupChangedPayload struct {
	SenderID string
	GroupID  string
	Group    *domain.Group
}

// UserChangedPayload accompanies EventUserChanged.
type UserChangedPayload struct {
	SenderID string
	User     *domain.Member
}
