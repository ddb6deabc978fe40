// Package database provides a ready-made database client for integration
// tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/database"
	"github.com/conclave-run/conclave/test/util"
)

// NewTestClient creates a test database client backed by an isolated
// per-test schema. In CI it connects to the external PostgreSQL service
// container; locally it uses a shared testcontainer. Cleanup is automatic.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
