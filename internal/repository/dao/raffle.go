package dao

import (
	"context"
	"time"
)

type Raffle struct {
	ID uint `gorm:"primaryKey"`
	EventFields
	Prize               string         `gorm:"size:200"`
	TicketsSold         int            `gorm:"not null;default:0"`
	PricePerTicketCents int64          `gorm:"not null"`
	MaxTickets          int            `gorm:"not null"`
	Tickets             []RaffleTicket `gorm:"foreignKey:RaffleID;constraint:OnDelete:CASCADE"`
}

type RaffleTicket struct {
	ID uint `gorm:"primaryKey"`
	TicketFields
	RaffleID uint `gorm:"not null;uniqueIndex:idx_raffle_ticket_number"`
	Number   int  `gorm:"not null;uniqueIndex:idx_raffle_ticket_number"`
}

func (d *EventDAO) CreateRaffle(ctx context.Context, raffle Raffle) (Raffle, error) {
	if err := d.insert(ctx, &raffle); err != nil {
		return Raffle{}, err
	}
	return raffle, nil
}

func (d *EventDAO) ListRaffles(ctx context.Context, from time.Time, limit int) ([]Raffle, error) {
	var raffles []Raffle
	if err := upcoming(d.conn(ctx), from, limit).Find(&raffles).Error; err != nil {
		return nil, translateError(err)
	}
	return raffles, nil
}

func (d *EventDAO) GetRaffle(ctx context.Context, id uint) (Raffle, error) {
	var raffle Raffle
	if err := d.conn(ctx).First(&raffle, id).Error; err != nil {
		return Raffle{}, translateError(err)
	}
	return raffle, nil
}

func (d *EventDAO) LockRaffle(ctx context.Context, id uint) (Raffle, error) {
	var raffle Raffle
	if err := d.forUpdate(ctx).First(&raffle, id).Error; err != nil {
		return Raffle{}, translateError(err)
	}
	return raffle, nil
}

// MaxRaffleTicketNumber returns the highest issued number, 0 when none.
func (d *EventDAO) MaxRaffleTicketNumber(ctx context.Context, raffleID uint) (int, error) {
	var max int
	err := d.conn(ctx).Model(&RaffleTicket{}).
		Select("COALESCE(MAX(number), 0)").
		Where("raffle_id = ?", raffleID).
		Scan(&max).Error
	if err != nil {
		return 0, translateError(err)
	}
	return max, nil
}

func (d *EventDAO) InsertRaffleTicket(ctx context.Context, ticket RaffleTicket, ticketsSold int, raisedCents int64) (RaffleTicket, error) {
	err := d.WithTx(ctx, func(ctx context.Context) error {
		if err := d.insert(ctx, &ticket); err != nil {
			return err
		}
		return d.updateColumns(ctx, &Raffle{}, ticket.RaffleID, map[string]interface{}{
			"tickets_sold": ticketsSold,
			"raised_cents": raisedCents,
		})
	})
	if err != nil {
		return RaffleTicket{}, err
	}
	return ticket, nil
}
