package payment

import (
	"time"

	"github.com/Amin-Golden/GymWeb/internal/api"
)

type Payment struct {
	ID          api.ID    `db:"id" json:"id"`
	ClientID    api.ID    `db:"client_id" json:"clientId"`
	PaymentType string    `db:"payment_type" json:"paymentType"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type ClientRef struct {
	ID          api.ID  `db:"id" json:"id"`
	FName       string  `db:"fname" json:"fname"`
	LName       *string `db:"lname" json:"lname"`
	PhoneNumber string  `db:"phone_number" json:"phoneNumber"`
}

type PaymentWithClient struct {
	Payment
	Client ClientRef `db:"client" json:"client"`
}

type CreateRequest struct {
	ClientID    api.ID  `json:"clientId" binding:"required"`
	PaymentType string  `json:"paymentType" binding:"required"`
	Description *string `json:"description"`
}

type UpdateRequest struct {
	ClientID    *api.ID `json:"clientId"`
	PaymentType *string `json:"paymentType" binding:"omitempty,min=1"`
	Description *string `json:"description"`
}
