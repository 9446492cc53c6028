package dao

import (
	"context"
	"time"
)

const concertSeatIndex = "idx_concert_entry_seat"

type Concert struct {
	ID uint `gorm:"primaryKey"`
	EventFields
	MaxAttendees       int            `gorm:"not null"`
	NumRows            int            `gorm:"not null"`
	SeatsPerRow        int            `gorm:"not null"`
	TicketPriceCents   int64          `gorm:"not null"`
	EnforceAttendeeCap bool           `gorm:"not null;default:false"`
	Entries            []ConcertEntry `gorm:"foreignKey:ConcertID;constraint:OnDelete:CASCADE"`
}

type ConcertEntry struct {
	ID uint `gorm:"primaryKey"`
	TicketFields
	ConcertID uint `gorm:"not null;uniqueIndex:idx_concert_entry_seat"`
	Row       int  `gorm:"column:seat_row;not null;uniqueIndex:idx_concert_entry_seat"`
	Seat      int  `gorm:"column:seat_number;not null;uniqueIndex:idx_concert_entry_seat"`
}

func (d *EventDAO) CreateConcert(ctx context.Context, concert Concert) (Concert, error) {
	if err := d.insert(ctx, &concert); err != nil {
		return Concert{}, err
	}
	return concert, nil
}

func (d *EventDAO) ListConcerts(ctx context.Context, from time.Time, limit int) ([]Concert, error) {
	var concerts []Concert
	if err := upcoming(d.conn(ctx), from, limit).Find(&concerts).Error; err != nil {
		return nil, translateError(err)
	}
	return concerts, nil
}

func (d *EventDAO) GetConcert(ctx context.Context, id uint) (Concert, error) {
	var concert Concert
	if err := d.conn(ctx).First(&concert, id).Error; err != nil {
		return Concert{}, translateError(err)
	}
	return concert, nil
}

func (d *EventDAO) LockConcert(ctx context.Context, id uint) (Concert, error) {
	var concert Concert
	if err := d.forUpdate(ctx).First(&concert, id).Error; err != nil {
		return Concert{}, translateError(err)
	}
	return concert, nil
}

func (d *EventDAO) CountEntries(ctx context.Context, concertIDs []uint) (map[uint]int, error) {
	return d.countBy(ctx, &ConcertEntry{}, "concert_id", concertIDs)
}

func (d *EventDAO) SeatTaken(ctx context.Context, concertID uint, row, seat int) (bool, error) {
	var n int64
	err := d.conn(ctx).Model(&ConcertEntry{}).
		Where("concert_id = ? AND seat_row = ? AND seat_number = ?", concertID, row, seat).
		Count(&n).Error
	if err != nil {
		return false, translateError(err)
	}
	return n > 0, nil
}

// OccupiedSeats returns the booked positions ordered by row then seat.
func (d *EventDAO) OccupiedSeats(ctx context.Context, concertID uint) ([]ConcertEntry, error) {
	var entries []ConcertEntry
	err := d.conn(ctx).
		Select("seat_row", "seat_number").
		Where("concert_id = ?", concertID).
		Order("seat_row").Order("seat_number").
		Find(&entries).Error
	if err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

func (d *EventDAO) InsertConcertEntry(ctx context.Context, entry ConcertEntry, raisedCents int64) (ConcertEntry, error) {
	err := d.WithTx(ctx, func(ctx context.Context) error {
		if err := d.insert(ctx, &entry); err != nil {
			return err
		}
		return d.updateColumns(ctx, &Concert{}, entry.ConcertID, map[string]interface{}{
			"raised_cents": raisedCents,
		})
	})
	if err != nil {
		return ConcertEntry{}, err
	}
	return entry, nil
}
