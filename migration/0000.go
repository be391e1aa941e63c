package migration

import (
	"context"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
)

// migrate0000 creates the database with the first released schema.
func migrate0000(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.JobApplication{},
		&entity.DailyRecord{},
		&entity.AchievementProgress{},
	)
}
