package visit

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
)

// Visit is one gym entrance-to-exit interval. A nil ExitTime means the
// client is still inside.
type Visit struct {
	ID           api.ID     `db:"id" json:"id"`
	ClientID     api.ID     `db:"client_id" json:"clientId"`
	EntranceTime time.Time  `db:"entrance_time" json:"entranceTime"`
	ExitTime     *time.Time `db:"exit_time" json:"exitTime"`
	LockerNumber *int       `db:"locker_number" json:"lockerNumber"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

func (v Visit) Open() bool {
	return v.ExitTime == nil
}

type ClientSummary struct {
	ID          api.ID  `db:"id" json:"id"`
	FName       string  `db:"fname" json:"fname"`
	LName       *string `db:"lname" json:"lname"`
	PhoneNumber string  `db:"phone_number" json:"phoneNumber"`
}

type VisitWithClient struct {
	Visit
	Client ClientSummary `db:"client" json:"client"`
}

type EnterRequest struct {
	ClientID     api.ID `json:"clientId" binding:"required"`
	LockerNumber *int   `json:"lockerNumber" binding:"omitempty,gte=0"`
}
