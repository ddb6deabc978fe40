package config

import "time"

// Built-in defaults. conclave.yaml overrides field by field; an absent file
// yields exactly this configuration (minus provider keys).
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:     ":8080",
			WSWriteTimeout: Duration(10 * time.Second),
		},
		LLM: LLMConfig{
			AnthropicKeyEnv: "ANTHROPIC_API_KEY",
			OpenAIKeyEnv:    "OPENAI_API_KEY",
			EmbeddingModel:  "text-embedding-3-small",
			Attempts:        3,
			RetryBackoff:    Duration(2 * time.Second),
		},
		Pricing: map[string]PricingEntry{
			"claude-sonnet-4-5":      {InputPerMTok: 3, OutputPerMTok: 15},
			"claude-haiku-4-5":       {InputPerMTok: 1, OutputPerMTok: 5},
			"gpt-5":                  {InputPerMTok: 1.25, OutputPerMTok: 10},
			"gpt-5-mini":             {InputPerMTok: 0.25, OutputPerMTok: 2},
			"text-embedding-3-small": {InputPerMTok: 0.02},
		},
		Agent: AgentConfig{
			MailboxSize: 1024,
			MaxTokens:   4096,
			Temperature: 0.7,
		},
		Actions: ActionConfig{
			Timeout:        Duration(30 * time.Second),
			MaxResultBytes: 16 * 1024,
			AnswerModel:    "gpt-5-mini",
		},
		Shell: ShellConfig{
			SmartWait: Duration(100 * time.Millisecond),
		},
		Lifecycle: LifecycleConfig{
			SpawnAttempts: 3,
			RetryBackoff:  Duration(100 * time.Millisecond),
			PauseGrace:    Duration(250 * time.Millisecond),
			StopTimeout:   Duration(5 * time.Second),
		},
		Skills: SkillsConfig{
			Dir: "./skills",
		},
		Profiles: map[string]ProfileConfig{
			"default": {
				Models:       []string{"claude-sonnet-4-5", "gpt-5", "claude-haiku-4-5"},
				Capabilities: []string{"core", "delegation", "network", "mcp", "secrets", "skills", "batch", "system"},
			},
			"lightweight": {
				Models:       []string{"claude-haiku-4-5"},
				Capabilities: []string{"core", "network", "skills"},
			},
		},
		DefaultProfile: "default",
	}
}
