package types

// ContextServerID identifies a context server configuration by its string key.
// The host supplies it verbatim; only string equality is meaningful.
type ContextServerID string

// String returns the raw identifier.
func (id ContextServerID) String() string {
	return string(id)
}

// Command describes how the host should launch a context server process.
// The extension only constructs the descriptor; spawning and lifecycle
// management stay with the host.
type Command struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// Project is an opaque handle to the host's current project. The host
// supplies it on every resolution call; resolution must not depend on it.
type Project interface{}

// Extension is the contract the host runtime calls into. Implementations
// must be pure: same identifier in, same descriptor or error out, with no
// side effects.
type Extension interface {
	ContextServerCommand(id ContextServerID, project Project) (Command, error)
}
