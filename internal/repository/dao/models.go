package dao

import "time"

type Event struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"size:64;not null"`
	Semester      string    `gorm:"size:32;not null;index"`
	Type          string    `gorm:"column:type;size:32;not null"`
	CallTime      time.Time `gorm:"not null;index"`
	ReleaseTime   *time.Time
	Points        int `gorm:"not null"`
	Comments      *string
	Location      *string `gorm:"size:255"`
	GigCount      bool    `gorm:"not null"`
	DefaultAttend bool    `gorm:"not null"`
	Section       *string `gorm:"size:20"`
}

type Gig struct {
	EventID         uint      `gorm:"primaryKey;autoIncrement:false"`
	PerformanceTime time.Time `gorm:"not null"`
	UniformID       uint      `gorm:"not null"`
	ContactName     *string   `gorm:"size:50"`
	ContactEmail    *string   `gorm:"size:50"`
	ContactPhone    *string   `gorm:"size:16"`
	Price           *int
	Public          bool `gorm:"not null"`
	Summary         *string
	Description     *string
}

// EventWithGigRow is one row of events LEFT JOIN gigs. Every gig column is
// nullable because plain events have no gig row.
type EventWithGigRow struct {
	ID            uint
	Name          string
	Semester      string
	Type          string
	CallTime      time.Time
	ReleaseTime   *time.Time
	Points        int
	Comments      *string
	Location      *string
	GigCount      bool
	DefaultAttend bool
	Section       *string

	GigEventID      *uint
	PerformanceTime *time.Time
	UniformID       *uint
	ContactName     *string
	ContactEmail    *string
	ContactPhone    *string
	Price           *int
	Public          *bool
	Summary         *string
	Description     *string
}

type GigRequestStatus string

const (
	GigRequestPending   GigRequestStatus = "pending"
	GigRequestAccepted  GigRequestStatus = "accepted"
	GigRequestDismissed GigRequestStatus = "dismissed"
)

type GigRequest struct {
	ID           uint             `gorm:"primaryKey"`
	Time         time.Time        `gorm:"column:submitted_at;not null;index"`
	Name         string           `gorm:"size:255;not null"`
	Organization string           `gorm:"size:255;not null"`
	EventID      *uint
	ContactName  string    `gorm:"size:255;not null"`
	ContactPhone string    `gorm:"size:16;not null"`
	ContactEmail string    `gorm:"size:50;not null"`
	StartTime    time.Time `gorm:"not null"`
	Location     string    `gorm:"size:255;not null"`
	Comments     *string
	Status       GigRequestStatus `gorm:"size:16;not null"`
}

type Attendance struct {
	Member       string `gorm:"primaryKey;size:50"`
	EventID      uint   `gorm:"primaryKey;autoIncrement:false"`
	ShouldAttend bool   `gorm:"not null"`
	DidAttend    bool   `gorm:"not null"`
	Confirmed    bool   `gorm:"not null"`
	MinutesLate  int    `gorm:"not null"`
}

// EventAttendanceRow is an event joined with one member's attendance row.
type EventAttendanceRow struct {
	ID            uint
	Name          string
	Semester      string
	Type          string
	CallTime      time.Time
	ReleaseTime   *time.Time
	Points        int
	Comments      *string
	Location      *string
	GigCount      bool
	DefaultAttend bool
	Section       *string

	Member       string
	ShouldAttend bool
	DidAttend    bool
	Confirmed    bool
	MinutesLate  int
}

type AbsenceRequest struct {
	Member  string    `gorm:"primaryKey;size:50"`
	EventID uint      `gorm:"primaryKey;autoIncrement:false"`
	Time    time.Time `gorm:"not null"`
	Reason  string    `gorm:"size:500;not null"`
	State   string    `gorm:"size:16;not null"`
}

type Semester struct {
	Name           string    `gorm:"primaryKey;size:32"`
	StartDate      time.Time `gorm:"not null"`
	EndDate        time.Time `gorm:"not null"`
	GigRequirement int       `gorm:"not null"`
	IsCurrent      bool      `gorm:"not null"`
}

type ActiveSemester struct {
	Member     string  `gorm:"primaryKey;size:50"`
	Semester   string  `gorm:"primaryKey;size:32"`
	Enrollment string  `gorm:"size:8;not null"`
	Section    *string `gorm:"size:20"`
}

type Uniform struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:32;not null"`
	Color       *string `gorm:"size:4"`
	Description *string
}
