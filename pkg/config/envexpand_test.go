package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvSubstitutesVariables(t *testing.T) {
	t.Setenv("CONCLAVE_DB_HOST", "db.internal")
	t.Setenv("CONCLAVE_DB_PORT", "5432")

	out := ExpandEnv([]byte("url: {{.CONCLAVE_DB_HOST}}:{{.CONCLAVE_DB_PORT}}"))
	assert.Equal(t, "url: db.internal:5432", string(out))
}

func TestExpandEnvMissingVariableBecomesEmpty(t *testing.T) {
	out := ExpandEnv([]byte("key: {{.CONCLAVE_DEFINITELY_UNSET_VAR}}"))
	assert.Equal(t, "key: ", string(out))
}

func TestExpandEnvPreservesDollarSigns(t *testing.T) {
	in := []byte(`pattern: "^secret.*$"` + "\n" + `password: "p@ss$word"`)
	out := ExpandEnv(in)
	assert.Equal(t, string(in), string(out))
}

func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	in := []byte("broken: {{.UNCLOSED")
	out := ExpandEnv(in)
	assert.Equal(t, string(in), string(out))
}
