package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns is the general credential sweep applied to every action
// result after the exact-value phase. It catches credentials the agent
// obtained outside the secret store (pasted into a prompt, read from a
// file, returned by an API).
var builtinPatterns = map[string]struct {
	Pattern     string
	Replacement string
}{
	"api_key": {
		Pattern:     `(?i)(api[_-]?key|apikey)["\s]*[:=]["\s]*([A-Za-z0-9_\-]{16,})`,
		Replacement: `${1}: [MASKED_API_KEY]`,
	},
	"bearer_token": {
		Pattern:     `(?i)bearer\s+([A-Za-z0-9_\-\.=]{16,})`,
		Replacement: `Bearer [MASKED_TOKEN]`,
	},
	"password_field": {
		Pattern:     `(?i)(password|passwd|pwd)["\s]*[:=]["\s]*(\S{6,})`,
		Replacement: `${1}: [MASKED_PASSWORD]`,
	},
	"aws_access_key": {
		Pattern:     `\bAKIA[0-9A-Z]{16}\b`,
		Replacement: `[MASKED_AWS_KEY]`,
	},
	"github_token": {
		Pattern:     `\bgh[pousr]_[A-Za-z0-9]{36,}\b`,
		Replacement: `[MASKED_GITHUB_TOKEN]`,
	},
	"private_key_block": {
		Pattern:     `(?s)-----BEGIN [A-Z ]*PRIVATE KEY-----.*?-----END [A-Z ]*PRIVATE KEY-----`,
		Replacement: `[MASKED_PRIVATE_KEY]`,
	},
}

// compileBuiltinPatterns compiles the built-in sweep. Invalid patterns are
// logged and skipped.
func compileBuiltinPatterns(logger *slog.Logger) []*CompiledPattern {
	out := make([]*CompiledPattern, 0, len(builtinPatterns))
	for name, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			logger.Error("failed to compile built-in masking pattern, skipping",
				slog.String("pattern", name), slog.Any("error", err))
			continue
		}
		out = append(out, &CompiledPattern{Name: name, Regex: compiled, Replacement: p.Replacement})
	}
	return out
}
