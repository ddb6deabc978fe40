package config

import (
	"fmt"

	"github.com/conclave-run/conclave/pkg/actions"
)

var knownCapabilities = map[string]bool{
	string(actions.CapCore):       true,
	string(actions.CapDelegation): true,
	string(actions.CapSystem):     true,
	string(actions.CapNetwork):    true,
	string(actions.CapMCP):        true,
	string(actions.CapSecrets):    true,
	string(actions.CapSkills):     true,
	string(actions.CapBatch):      true,
}

// validate checks the fully merged configuration. Everything it rejects
// would otherwise surface as a confusing runtime failure.
func validate(cfg *Config) error {
	if cfg.Server.ListenAddr == "" {
		return NewValidationError("server", "server", "listen_addr", ErrMissingRequiredField)
	}

	if len(cfg.Profiles) == 0 {
		return NewValidationError("profiles", "profiles", "", ErrMissingRequiredField)
	}
	if _, ok := cfg.Profiles[cfg.DefaultProfile]; !ok {
		return NewValidationError("profiles", cfg.DefaultProfile, "default_profile",
			fmt.Errorf("%w: default profile is not declared", ErrProfileNotFound))
	}
	for name, profile := range cfg.Profiles {
		if len(profile.Models) == 0 {
			return NewValidationError("profile", name, "models", ErrMissingRequiredField)
		}
		if len(profile.Capabilities) == 0 {
			return NewValidationError("profile", name, "capabilities", ErrMissingRequiredField)
		}
		for _, capability := range profile.Capabilities {
			if !knownCapabilities[capability] {
				return NewValidationError("profile", name, "capabilities",
					fmt.Errorf("%w: unknown capability %q", ErrInvalidValue, capability))
			}
		}
	}

	for model, entry := range cfg.Pricing {
		if entry.InputPerMTok < 0 || entry.OutputPerMTok < 0 {
			return NewValidationError("pricing", model, "", fmt.Errorf("%w: negative rate", ErrInvalidValue))
		}
	}

	if cfg.Agent.MailboxSize <= 0 {
		return NewValidationError("agent", "agent", "mailbox_size", ErrInvalidValue)
	}
	if cfg.Agent.MaxTokens <= 0 {
		return NewValidationError("agent", "agent", "max_tokens", ErrInvalidValue)
	}
	if cfg.Actions.Timeout <= 0 {
		return NewValidationError("actions", "actions", "timeout", ErrInvalidValue)
	}
	if cfg.Actions.MaxResultBytes <= 0 {
		return NewValidationError("actions", "actions", "max_result_bytes", ErrInvalidValue)
	}
	if cfg.Shell.SmartWait <= 0 {
		return NewValidationError("shell", "shell", "smart_wait", ErrInvalidValue)
	}
	if cfg.Lifecycle.SpawnAttempts <= 0 {
		return NewValidationError("lifecycle", "lifecycle", "spawn_attempts", ErrInvalidValue)
	}
	return nil
}
