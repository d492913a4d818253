package instructor

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
)

type Instructor struct {
	ID          api.ID    `db:"id" json:"id"`
	PackageID   api.ID    `db:"package_id" json:"packageId"`
	FName       string    `db:"fname" json:"fname"`
	LName       *string   `db:"lname" json:"lname"`
	DOB         time.Time `db:"dob" json:"dob"`
	IsMale      bool      `db:"is_male" json:"isMale"`
	Salary      float64   `db:"salary" json:"salary"`
	Email       *string   `db:"email" json:"email"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	PhoneNumber string    `db:"phone_number" json:"phoneNumber"`
	ImagePath   *string   `db:"image_path" json:"imagePath"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type PackageRef struct {
	ID          api.ID `db:"id" json:"id"`
	PackageName string `db:"package_name" json:"packageName"`
}

type InstructorWithPackage struct {
	Instructor
	Package         PackageRef `db:"package" json:"package"`
	MembershipCount int        `db:"membership_count" json:"membershipCount"`
	SessionCount    int        `db:"session_count" json:"sessionCount"`
}

type CreateRequest struct {
	PackageID   api.ID  `json:"packageId" binding:"required"`
	FName       string  `json:"fname" binding:"required"`
	LName       *string `json:"lname"`
	DOB         string  `json:"dob" binding:"required,iso8601"`
	IsMale      *bool   `json:"isMale" binding:"required"`
	Salary      float64 `json:"salary" binding:"gte=0"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
	ImagePath   *string `json:"imagePath"`
}

type UpdateRequest struct {
	PackageID   *api.ID  `json:"packageId"`
	FName       *string  `json:"fname" binding:"omitempty,min=1"`
	LName       *string  `json:"lname"`
	DOB         *string  `json:"dob" binding:"omitempty,iso8601"`
	IsMale      *bool    `json:"isMale"`
	Salary      *float64 `json:"salary" binding:"omitempty,gte=0"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Description *string  `json:"description"`
	PhoneNumber *string  `json:"phoneNumber" binding:"omitempty,min=1"`
	ImagePath   *string  `json:"imagePath"`
}

// Params carries parsed request values to the repository. On update a nil
// field leaves the column untouched.
type Params struct {
	PackageID   *int64
	FName       *string
	LName       *string
	DOB         *time.Time
	IsMale      *bool
	Salary      *float64
	Email       *string
	Title       *string
	Description *string
	PhoneNumber *string
	ImagePath   *string
}
