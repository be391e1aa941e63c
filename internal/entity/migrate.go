package entity

import (
	"context"

	"github.com/ethantsaox/jobflow/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&JobApplication{},
		&DailyRecord{},
		&AchievementProgress{},
	)
}
