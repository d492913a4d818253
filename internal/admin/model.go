package admin

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
)

// Admin is a back-office operator. AdminID is the login name.
type Admin struct {
	ID           api.ID     `db:"id" json:"id"`
	AdminID      string     `db:"admin_id" json:"adminID"`
	FName        string     `db:"fname" json:"fname"`
	LName        string     `db:"lname" json:"lname"`
	DOB          *time.Time `db:"dob" json:"dob,omitempty"`
	IsMale       bool       `db:"is_male" json:"isMale"`
	PasswordHash string     `db:"password" json:"-"`
	PhoneNumber  string     `db:"phone_number" json:"phoneNumber"`
	Email        *string    `db:"email" json:"email"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

type LoginRequest struct {
	AdminID  string `json:"adminID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Admin        Admin  `json:"admin"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type RefreshResponse struct {
	Token string `json:"token"`
}

// NewAdmin is the input for provisioning an operator from the command line.
type NewAdmin struct {
	AdminID     string
	Password    string
	FName       string
	LName       string
	PhoneNumber string
	DOB         *time.Time
	IsMale      bool
	Email       *string
}
