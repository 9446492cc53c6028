package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	NameMaxLength  = 100
	EmailMaxLength = 254
	PhoneMaxLength = 20
)

// 6 to 15 digits, optionally grouped with spaces, dots, dashes or brackets.
var phonePattern = regexp2.MustCompile(`^(?=(?:\D*\d){6,15}\D*$)\+?[\d\s().-]+$`, regexp2.None)

var errInvalidPhone = errors.New("must be a valid phone number")

type Purchaser struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (p Purchaser) Normalize() Purchaser {
	return Purchaser{
		Name:  strings.TrimSpace(p.Name),
		Email: strings.TrimSpace(p.Email),
		Phone: strings.TrimSpace(p.Phone),
	}
}

func (p Purchaser) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, NameMaxLength)),
		validation.Field(&p.Email, validation.Length(0, EmailMaxLength), is.Email),
		validation.Field(&p.Phone, validation.Length(0, PhoneMaxLength), validation.By(validatePhone)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func validatePhone(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	ok, err := phonePattern.MatchString(s)
	if err != nil || !ok {
		return errInvalidPhone
	}
	return nil
}

// Ticket is the part every purchase record has in common.
type Ticket struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	Purchaser   Purchaser `json:"purchaser"`
	Used        bool      `json:"used"`
	PurchasedAt time.Time `json:"purchased_at"`
}

type DinnerEntry struct {
	Ticket
	TableID     uint `json:"table_id"`
	TableNumber int  `json:"table_number"`
}

type RaffleTicket struct {
	Ticket
	RaffleID uint `json:"raffle_id"`
	Number   int  `json:"number"`
}

type WalkBib struct {
	Ticket
	WalkID    uint      `json:"walk_id"`
	Number    int       `json:"number"`
	ShirtSize ShirtSize `json:"shirt_size"`
}

type ConcertEntry struct {
	Ticket
	ConcertID uint `json:"concert_id"`
	Row       int  `json:"row"`
	Seat      int  `json:"seat"`
}

// TicketRecord locates a ticket of any kind by its reference.
type TicketRecord struct {
	Kind    EventKind `json:"kind"`
	EventID uint      `json:"event_id"`
	Ticket
}

type ShirtSize string

const (
	ShirtXXS ShirtSize = "XXS"
	ShirtXS  ShirtSize = "XS"
	ShirtS   ShirtSize = "S"
	ShirtM   ShirtSize = "M"
	ShirtL   ShirtSize = "L"
	ShirtXL  ShirtSize = "XL"
	ShirtXXL ShirtSize = "XXL"
)

type ShirtSizeOption struct {
	Code  ShirtSize `json:"code"`
	Label string    `json:"label"`
}

var shirtSizes = []ShirtSizeOption{
	{ShirtXXS, "Extra Extra Small"},
	{ShirtXS, "Extra Small"},
	{ShirtS, "Small"},
	{ShirtM, "Medium"},
	{ShirtL, "Large"},
	{ShirtXL, "Extra Large"},
	{ShirtXXL, "Extra Extra Large"},
}

// ShirtSizes lists the accepted sizes, smallest first.
func ShirtSizes() []ShirtSizeOption {
	out := make([]ShirtSizeOption, len(shirtSizes))
	copy(out, shirtSizes)
	return out
}

// ParseShirtSize accepts a size code in any letter case.
func ParseShirtSize(s string) (ShirtSize, error) {
	code := ShirtSize(strings.ToUpper(strings.TrimSpace(s)))
	for _, opt := range shirtSizes {
		if opt.Code == code {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: unknown shirt size %q", ErrInvalidInput, s)
}
