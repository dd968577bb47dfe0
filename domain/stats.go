package domain

// Departure describes a connection that just left the registry.
// LastForIdentity is true when the identity has no connection left.
type Departure struct {
	Identity        Identity
	LastForIdentity bool
}

type RegistryStats struct {
	Connections int `json:"connections"`
	Identities  int `json:"identities"`
	Groups      int `json:"groups"`
}
