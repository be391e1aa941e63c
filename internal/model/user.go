package model

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	DailyGoal int    `json:"daily_goal"`
	Timezone  string `json:"timezone"`
}

type GetUserRequest struct{}

type GetUserResponse User

type UpdateDailyGoalRequest struct {
	DailyGoal int `json:"daily_goal"`
}

type UpdateDailyGoalResponse struct{}
