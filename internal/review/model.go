// File: internal/review/model.go
package review

import "time"

const (
	StatusActive = "active"
	TierBasic    = "basic"
	TierPro      = "pro"
)

// Application is a golf professional's pending request to join the platform.
type Application struct {
	ID             int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Title          string    `gorm:"type:varchar(255)" json:"title"`
	Location       string    `gorm:"type:varchar(100)" json:"location"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Phone          string    `gorm:"type:varchar(50)" json:"phone"`
	Specialties    []string  `gorm:"type:text;serializer:json" json:"specialties"`
	TourExperience string    `gorm:"type:text" json:"tourExperience"`
	Certifications []string  `gorm:"type:text;serializer:json" json:"certifications"`
	AppliedAt      time.Time `gorm:"index" json:"appliedAt"`
	ProfileImage   string    `gorm:"type:text" json:"profileImage"`
}

func (Application) TableName() string { return "pro_applications" }

// ApprovedPro is a professional already listed on the platform.
type ApprovedPro struct {
	ID               int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name             string  `gorm:"type:varchar(255)" json:"name"`
	Title            string  `gorm:"type:varchar(255)" json:"title"`
	Location         string  `gorm:"type:varchar(100)" json:"location"`
	Status           string  `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ProfileViews     int     `gorm:"not null;default:0" json:"profileViews"`
	Leads            int     `gorm:"not null;default:0" json:"leads"`
	MatchedLessons   int     `gorm:"not null;default:0" json:"matchedLessons"`
	Rating           float64 `gorm:"not null;default:0" json:"rating"`
	SubscriptionTier string  `gorm:"type:varchar(20);not null;default:'basic'" json:"subscriptionTier"`
}

func (ApprovedPro) TableName() string { return "approved_pros" }

// Snapshot is the admin view of the board.
// Processing holds the ids whose approve or reject is still running.
type Snapshot struct {
	Pending       []Application `json:"pending"`
	Processing    []int64       `json:"processing"`
	PendingCount  int           `json:"pendingCount"`
	ApprovedCount int           `json:"approvedCount"`
}

// Counts is returned after an approve or reject.
type Counts struct {
	PendingCount  int `json:"pendingCount"`
	ApprovedCount int `json:"approvedCount"`
}

// Digest summarises the pending queue for the periodic report.
type Digest struct {
	PendingCount    int
	OldestAppliedAt time.Time
}
