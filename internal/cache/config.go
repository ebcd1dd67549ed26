package cache

import "time"

// NeverExpires marks a namespace or write whose entries are valid forever.
// Stored as a zero TTL.
const NeverExpires = time.Duration(-1)

// DefaultTTL applies to any namespace without an explicit configuration.
const DefaultTTL = time.Minute

// Well-known namespaces.
const (
	NamespaceUser       = "user"
	NamespaceGroups     = "groups"
	NamespaceGroup      = "group"
	NamespaceMembership = "membership"
	NamespaceLists      = "lists"
	NamespaceProducts   = "products"
)

// NamespaceConfig holds the default TTL and storage tier for one namespace.
type NamespaceConfig struct {
	// TTL is the default entry lifetime. Use NeverExpires for identity-like
	// data that only changes on explicit invalidation.
	TTL time.Duration
	// Tier is the storage tier entries are mirrored to.
	Tier Tier
}

// defaultNamespaces is the built-in TTL table: identity never expires,
// group data is fresh for minutes, the product catalog for an hour.
func defaultNamespaces() map[string]NamespaceConfig {
	return map[string]NamespaceConfig{
		NamespaceUser:       {TTL: NeverExpires, Tier: TierDurable},
		NamespaceGroups:     {TTL: 5 * time.Minute, Tier: TierSession},
		NamespaceGroup:      {TTL: 5 * time.Minute, Tier: TierSession},
		NamespaceMembership: {TTL: 5 * time.Minute, Tier: TierSession},
		NamespaceLists:      {TTL: 2 * time.Minute, Tier: TierSession},
		NamespaceProducts:   {TTL: time.Hour, Tier: TierDurable},
	}
}
