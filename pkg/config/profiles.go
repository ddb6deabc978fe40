package config

import "sync"

// Profile is a resolved agent profile: the model pool that votes in each
// consensus cycle and the capability groups gating the action catalog.
type Profile struct {
	Name         string
	Models       []string
	Capabilities []string
}

// ProfileRegistry provides thread-safe access to resolved profiles.
type ProfileRegistry struct {
	mu          sync.RWMutex
	profiles    map[string]Profile
	defaultName string
}

// NewProfileRegistry builds a registry from declared profiles. The default
// name is assumed validated.
func NewProfileRegistry(declared map[string]ProfileConfig, defaultName string) *ProfileRegistry {
	profiles := make(map[string]Profile, len(declared))
	for name, pc := range declared {
		profiles[name] = Profile{
			Name:         name,
			Models:       append([]string(nil), pc.Models...),
			Capabilities: append([]string(nil), pc.Capabilities...),
		}
	}
	return &ProfileRegistry{profiles: profiles, defaultName: defaultName}
}

// Get returns the named profile.
func (r *ProfileRegistry) Get(name string) (Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	return p, ok
}

// Default returns the configured default profile.
func (r *ProfileRegistry) Default() Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profiles[r.defaultName]
}

// Names returns all registered profile names.
func (r *ProfileRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	return names
}
