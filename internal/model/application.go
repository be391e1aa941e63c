package model

type Application struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
	Status      string `json:"status"`
	AppliedAt   string `json:"applied_at"`
}

type RecordApplicationRequest struct {
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
}

type RecordApplicationResponse struct {
	ID            string        `json:"id"`
	CurrentStreak int           `json:"current_streak"`
	GoalMet       bool          `json:"goal_met"`
	NewlyUnlocked []Achievement `json:"newly_unlocked"`
	Motivation    Motivation    `json:"motivation"`
}

type UpdateApplicationStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateApplicationStatusResponse struct {
	NewlyUnlocked []Achievement `json:"newly_unlocked"`
}

type GetApplicationsRequest struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetApplicationsResponse struct {
	Applications []Application `json:"applications"`
}
