package entity

type User struct {
	Base

	Name           string
	Email          string `gorm:"unique"`
	HashedPassword string

	// DailyGoal is the number of applications per day the user aims for.
	DailyGoal int

	// Timezone is an IANA location name. "Today" is always computed in
	// the user's own timezone.
	Timezone string
}
