package membership

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
)

type Membership struct {
	ID             api.ID    `db:"id" json:"id"`
	ClientID       api.ID    `db:"client_id" json:"clientId"`
	PackageID      api.ID    `db:"package_id" json:"packageId"`
	InstructorID   api.ID    `db:"instructor_id" json:"instructorId"`
	Status         string    `db:"status" json:"status"`
	StartDate      time.Time `db:"start_date" json:"startDate"`
	EndDate        time.Time `db:"end_date" json:"endDate"`
	PaymentDate    time.Time `db:"payment_date" json:"paymentDate"`
	IsPaid         bool      `db:"is_paid" json:"isPaid"`
	Description    *string   `db:"description" json:"description"`
	RemainSessions int       `db:"remain_sessions" json:"remainSessions"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// ActiveAt reports whether the membership entitles gym entry at now.
func (m Membership) ActiveAt(now time.Time) bool {
	return m.IsPaid && !m.EndDate.Before(now)
}

type ClientRef struct {
	ID    api.ID  `db:"id" json:"id"`
	FName string  `db:"fname" json:"fname"`
	LName *string `db:"lname" json:"lname"`
}

type PackageRef struct {
	ID          api.ID `db:"id" json:"id"`
	PackageName string `db:"package_name" json:"packageName"`
}

type InstructorRef struct {
	ID    api.ID  `db:"id" json:"id"`
	FName string  `db:"fname" json:"fname"`
	LName *string `db:"lname" json:"lname"`
}

type Details struct {
	Membership
	Client     ClientRef     `db:"client" json:"client"`
	Package    PackageRef    `db:"package" json:"package"`
	Instructor InstructorRef `db:"instructor" json:"instructor"`
}

type SessionRef struct {
	ID              api.ID    `db:"id" json:"id"`
	InstructorID    api.ID    `db:"instructor_id" json:"instructorId"`
	DestinationDate time.Time `db:"destination_date" json:"destinationDate"`
	IsAttended      bool      `db:"is_attended" json:"isAttended"`
	Description     *string   `db:"description" json:"description"`
}

type DetailsWithSessions struct {
	Details
	Sessions []SessionRef `json:"sessions"`
}

type CreateParams struct {
	ClientID       int64
	PackageID      int64
	InstructorID   int64
	Status         string
	StartDate      time.Time
	EndDate        time.Time
	PaymentDate    time.Time
	IsPaid         bool
	Description    *string
	RemainSessions int
}

// UpdateParams leaves a column untouched when its field is nil.
type UpdateParams struct {
	ClientID       *int64
	PackageID      *int64
	InstructorID   *int64
	Status         *string
	StartDate      *time.Time
	EndDate        *time.Time
	PaymentDate    *time.Time
	IsPaid         *bool
	Description    *string
	RemainSessions *int
}

type CreateRequest struct {
	ClientID       api.ID  `json:"clientId" binding:"required"`
	PackageID      api.ID  `json:"packageId" binding:"required"`
	InstructorID   api.ID  `json:"instructorId" binding:"required"`
	Status         string  `json:"status" binding:"required"`
	StartDate      string  `json:"startDate" binding:"required,iso8601"`
	EndDate        string  `json:"endDate" binding:"required,iso8601"`
	PaymentDate    string  `json:"paymentDate" binding:"required,iso8601"`
	IsPaid         *bool   `json:"isPaid" binding:"required"`
	Description    *string `json:"description"`
	RemainSessions *int    `json:"remainSessions" binding:"omitempty,gte=0"`
}

type UpdateRequest struct {
	ClientID       *api.ID `json:"clientId"`
	PackageID      *api.ID `json:"packageId"`
	InstructorID   *api.ID `json:"instructorId"`
	Status         *string `json:"status"`
	StartDate      *string `json:"startDate" binding:"omitempty,iso8601"`
	EndDate        *string `json:"endDate" binding:"omitempty,iso8601"`
	PaymentDate    *string `json:"paymentDate" binding:"omitempty,iso8601"`
	IsPaid         *bool   `json:"isPaid"`
	Description    *string `json:"description"`
	RemainSessions *int    `json:"remainSessions" binding:"omitempty,gte=0"`
}
