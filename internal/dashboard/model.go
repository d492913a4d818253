package dashboard

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
	"github.com/Amin-Golden/GymWeb/internal/visit"
)

type Stats struct {
	TotalClients      int `db:"total_clients" json:"totalClients"`
	TotalPackages     int `db:"total_packages" json:"totalPackages"`
	TotalInstructors  int `db:"total_instructors" json:"totalInstructors"`
	ActiveMemberships int `db:"active_memberships" json:"activeMemberships"`
	ActiveGymSessions int `db:"active_gym_sessions" json:"activeGymSessions"`
	TodayGymSessions  int `db:"today_gym_sessions" json:"todayGymSessions"`
	TotalPayments     int `db:"total_payments" json:"totalPayments"`
	ActiveSessions    int `db:"active_sessions" json:"activeSessions"`
}

type ClientRef struct {
	ID    api.ID  `db:"id" json:"id"`
	FName string  `db:"fname" json:"fname"`
	LName *string `db:"lname" json:"lname"`
}

type RecentClient struct {
	ClientRef
	PhoneNumber string    `db:"phone_number" json:"phoneNumber"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type PackageRef struct {
	ID          api.ID `db:"id" json:"id"`
	PackageName string `db:"package_name" json:"packageName"`
}

type RecentMembership struct {
	ID        api.ID     `db:"id" json:"id"`
	Status    string     `db:"status" json:"status"`
	IsPaid    bool       `db:"is_paid" json:"isPaid"`
	EndDate   time.Time  `db:"end_date" json:"endDate"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	Client    ClientRef  `db:"client" json:"client"`
	Package   PackageRef `db:"package" json:"package"`
}

type RecentPayment struct {
	ID          api.ID    `db:"id" json:"id"`
	PaymentType string    `db:"payment_type" json:"paymentType"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	Client      ClientRef `db:"client" json:"client"`
}

type RecentActivity struct {
	RecentClients     []RecentClient          `json:"recentClients"`
	RecentMemberships []RecentMembership      `json:"recentMemberships"`
	RecentPayments    []RecentPayment         `json:"recentPayments"`
	ActiveGymSessions []visit.VisitWithClient `json:"activeGymSessions"`
}
