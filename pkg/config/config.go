// Package config loads and validates the conclave.yaml system
// configuration: server settings, LLM providers and pricing, agent and
// consensus tuning, and the profile registry that decides which model pool
// and capability groups an agent runs under.
package config

import (
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/conclave-run/conclave/pkg/llm"
)

// Duration parses YAML duration strings ("250ms", "30s") into
// time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the fully resolved system configuration: built-in defaults
// merged with conclave.yaml, validated, with the profile registry built.
type Config struct {
	Server    ServerConfig             `yaml:"server"`
	LLM       LLMConfig                `yaml:"llm"`
	Pricing   map[string]PricingEntry  `yaml:"pricing"`
	Agent     AgentConfig              `yaml:"agent"`
	Actions   ActionConfig             `yaml:"actions"`
	Shell     ShellConfig              `yaml:"shell"`
	Lifecycle LifecycleConfig          `yaml:"lifecycle"`
	Skills    SkillsConfig             `yaml:"skills"`
	Profiles  map[string]ProfileConfig `yaml:"profiles"`
	// DefaultProfile names the profile used when a task or spawn names none.
	DefaultProfile string `yaml:"default_profile"`

	// ProfileRegistry is built from Profiles during Initialize.
	ProfileRegistry *ProfileRegistry `yaml:"-"`
}

// ServerConfig holds the HTTP/WebSocket surface settings.
type ServerConfig struct {
	ListenAddr       string   `yaml:"listen_addr"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
	WSWriteTimeout   Duration `yaml:"ws_write_timeout"`
}

// LLMConfig selects providers by the env var carrying each key, so the
// YAML file never contains a secret.
type LLMConfig struct {
	AnthropicKeyEnv string   `yaml:"anthropic_key_env"`
	OpenAIKeyEnv    string   `yaml:"openai_key_env"`
	EmbeddingModel  string   `yaml:"embedding_model"`
	Attempts        int      `yaml:"attempts"`
	RetryBackoff    Duration `yaml:"retry_backoff"`
}

// PricingEntry is the per-million-token rate card for one model or model
// prefix.
type PricingEntry struct {
	InputPerMTok  float64 `yaml:"input_per_mtok"`
	OutputPerMTok float64 `yaml:"output_per_mtok"`
}

// AgentConfig tunes the actor loop.
type AgentConfig struct {
	MailboxSize int     `yaml:"mailbox_size"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// ActionConfig tunes the action router.
type ActionConfig struct {
	Timeout        Duration `yaml:"timeout"`
	MaxResultBytes int      `yaml:"max_result_bytes"`
	AnswerModel    string   `yaml:"answer_model"`
}

// ShellConfig tunes background command execution.
type ShellConfig struct {
	// SmartWait is how long a smart-mode shell command is given to finish
	// before the caller is released and completion arrives as an event.
	SmartWait Duration `yaml:"smart_wait"`
}

// LifecycleConfig tunes spawn, pause, and restore workers.
type LifecycleConfig struct {
	SpawnAttempts int      `yaml:"spawn_attempts"`
	RetryBackoff  Duration `yaml:"retry_backoff"`
	PauseGrace    Duration `yaml:"pause_grace"`
	StopTimeout   Duration `yaml:"stop_timeout"`
}

// SkillsConfig locates the on-disk skill library.
type SkillsConfig struct {
	Dir string `yaml:"dir"`
}

// ProfileConfig declares one agent profile in YAML.
type ProfileConfig struct {
	Models       []string `yaml:"models"`
	Capabilities []string `yaml:"capabilities"`
}

// PricingTable converts the YAML rate card into the llm package's table.
func (c *Config) PricingTable() llm.PricingTable {
	table := make(llm.PricingTable, len(c.Pricing))
	for model, entry := range c.Pricing {
		table[model] = llm.Pricing{
			InputPerMTok:  decimal.NewFromFloat(entry.InputPerMTok),
			OutputPerMTok: decimal.NewFromFloat(entry.OutputPerMTok),
		}
	}
	return table
}
