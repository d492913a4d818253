package packages

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
)

// Package is a sellable training plan. Price is in whole currency units.
type Package struct {
	ID          api.ID    `db:"id" json:"id"`
	PackageName string    `db:"package_name" json:"packageName"`
	ImagePath   *string   `db:"image_path" json:"imagePath"`
	Duration    string    `db:"duration" json:"duration"`
	Price       int       `db:"price" json:"price"`
	Days        int       `db:"days" json:"days"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type PackageWithCounts struct {
	Package
	MembershipCount int `db:"membership_count" json:"membershipCount"`
	InstructorCount int `db:"instructor_count" json:"instructorCount"`
}

type InstructorRef struct {
	ID    api.ID  `db:"id" json:"id"`
	FName string  `db:"fname" json:"fname"`
	LName *string `db:"lname" json:"lname"`
	Title string  `db:"title" json:"title"`
}

type PackageDetails struct {
	PackageWithCounts
	Instructors []InstructorRef `json:"instructors"`
}

type CreateRequest struct {
	PackageName string  `json:"packageName" binding:"required"`
	ImagePath   *string `json:"imagePath"`
	Duration    string  `json:"duration" binding:"required"`
	Price       int     `json:"price" binding:"gte=0"`
	Days        int     `json:"days" binding:"required,gte=1"`
	Description *string `json:"description"`
}

type UpdateRequest struct {
	PackageName *string `json:"packageName" binding:"omitempty,min=1"`
	ImagePath   *string `json:"imagePath"`
	Duration    *string `json:"duration" binding:"omitempty,min=1"`
	Price       *int    `json:"price" binding:"omitempty,gte=0"`
	Days        *int    `json:"days" binding:"omitempty,gte=1"`
	Description *string `json:"description"`
}
