package migration

import (
	"context"

	"github.com/ethantsaox/jobflow/internal/entity"
)

// When this migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
