package training

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
)

// Session is one scheduled training appointment under a membership.
type Session struct {
	ID              api.ID    `db:"id" json:"id"`
	InstructorID    api.ID    `db:"instructor_id" json:"instructorId"`
	MembershipID    api.ID    `db:"membership_id" json:"membershipId"`
	DestinationDate time.Time `db:"destination_date" json:"destinationDate"`
	IsAttended      bool      `db:"is_attended" json:"isAttended"`
	Description     *string   `db:"description" json:"description"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type PersonRef struct {
	ID    api.ID  `db:"id" json:"id"`
	FName string  `db:"fname" json:"fname"`
	LName *string `db:"lname" json:"lname"`
}

type SessionDetails struct {
	Session
	Instructor PersonRef `db:"instructor" json:"instructor"`
	Client     PersonRef `db:"client" json:"client"`
}

type CreateRequest struct {
	InstructorID    api.ID  `json:"instructorId" binding:"required"`
	MembershipID    api.ID  `json:"membershipId" binding:"required"`
	DestinationDate string  `json:"destinationDate" binding:"required,iso8601"`
	IsAttended      *bool   `json:"isAttended" binding:"required"`
	Description     *string `json:"description"`
}

type UpdateRequest struct {
	InstructorID    *api.ID `json:"instructorId"`
	MembershipID    *api.ID `json:"membershipId"`
	DestinationDate *string `json:"destinationDate" binding:"omitempty,iso8601"`
	IsAttended      *bool   `json:"isAttended"`
	Description     *string `json:"description"`
}

// Params leaves a column untouched on update when its field is nil.
type Params struct {
	InstructorID    *int64
	MembershipID    *int64
	DestinationDate *time.Time
	IsAttended      *bool
	Description     *string
}
