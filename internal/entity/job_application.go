package entity

import "time"

type ApplicationStatus string

const (
	Applied     ApplicationStatus = "applied"
	Interviewed ApplicationStatus = "interview"
	Offered     ApplicationStatus = "offer"
	Rejected    ApplicationStatus = "rejected"
)

// InterviewedStatuses are the statuses counting toward the interview
// counter. An offer implies the user interviewed first.
var InterviewedStatuses = []ApplicationStatus{Interviewed, Offered}

type JobApplication struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	CompanyName string
	Position    string
	Status      ApplicationStatus

	AppliedAt time.Time `gorm:"index"`
}
