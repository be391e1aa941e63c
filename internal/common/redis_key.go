package common

import "fmt"

func RedisKeyAchievementSnapshot(userID string) string {
	return fmt.Sprintf("achievement_snapshot:%s", userID)
}
