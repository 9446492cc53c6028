package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

// PurchaseRequest identifies who is buying. Field rules are checked
// again by the allocation service after trimming.
type PurchaseRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r PurchaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

func (r PurchaseRequest) Purchaser() domain.Purchaser {
	return domain.Purchaser{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

type WalkBibRequest struct {
	PurchaseRequest
	ShirtSize string `json:"shirt_size"`
}

func (r WalkBibRequest) Validate() error {
	if err := r.PurchaseRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.ShirtSize, validation.Required),
	)
}

type ConcertEntryRequest struct {
	PurchaseRequest
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

func (r ConcertEntryRequest) Validate() error {
	if err := r.PurchaseRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Row, validation.Required),
		validation.Field(&r.Seat, validation.Required),
	)
}
