package client

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
	"github.com/Amin-Golden/GymWeb/internal/membership"
	"github.com/Amin-Golden/GymWeb/internal/payment"
	"github.com/Amin-Golden/GymWeb/internal/visit"
)

// RecentVisitLimit bounds the visit history returned with a client.
const RecentVisitLimit = 10

type Client struct {
	ID           api.ID    `db:"id" json:"id"`
	FName        string    `db:"fname" json:"fname"`
	LName        *string   `db:"lname" json:"lname"`
	DOB          time.Time `db:"dob" json:"dob"`
	IsMale       bool      `db:"is_male" json:"isMale"`
	Email        *string   `db:"email" json:"email"`
	PhoneNumber  string    `db:"phone_number" json:"phoneNumber"`
	SocialNumber string    `db:"social_number" json:"socialNumber"`
	Description  *string   `db:"description" json:"description"`
	Locker       *int      `db:"locker" json:"locker"`
	Weight       *float64  `db:"weight" json:"weight"`
	Height       *float64  `db:"height" json:"height"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type ClientWithMemberships struct {
	Client
	Memberships []membership.Details `json:"memberships"`
}

type ClientDetails struct {
	Client
	Memberships []membership.Details `json:"memberships"`
	Payments    []payment.Payment    `json:"payments"`
	GymSessions []visit.Visit        `json:"gymSessions"`
}

type CreateRequest struct {
	FName        string   `json:"fname" binding:"required"`
	LName        *string  `json:"lname"`
	DOB          string   `json:"dob" binding:"required,iso8601"`
	IsMale       *bool    `json:"isMale" binding:"required"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	PhoneNumber  string   `json:"phoneNumber" binding:"required"`
	SocialNumber string   `json:"socialNumber" binding:"required"`
	Description  *string  `json:"description"`
	Locker       *int     `json:"locker" binding:"omitempty,gte=0"`
	Weight       *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height       *float64 `json:"height" binding:"omitempty,gt=0"`
}

type UpdateRequest struct {
	FName        *string  `json:"fname" binding:"omitempty,min=1"`
	LName        *string  `json:"lname"`
	DOB          *string  `json:"dob" binding:"omitempty,iso8601"`
	IsMale       *bool    `json:"isMale"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	PhoneNumber  *string  `json:"phoneNumber" binding:"omitempty,min=1"`
	SocialNumber *string  `json:"socialNumber" binding:"omitempty,min=1"`
	Description  *string  `json:"description"`
	Locker       *int     `json:"locker" binding:"omitempty,gte=0"`
	Weight       *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height       *float64 `json:"height" binding:"omitempty,gt=0"`
}

// Params carries parsed values to the repository. On update a nil field
// leaves the column untouched.
type Params struct {
	FName        *string
	LName        *string
	DOB          *time.Time
	IsMale       *bool
	Email        *string
	PhoneNumber  *string
	SocialNumber *string
	Description  *string
	Locker       *int
	Weight       *float64
	Height       *float64
}
