package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// EventFields are the columns every event table carries.
type EventFields struct {
	Date        time.Time `gorm:"not null;index"`
	Location    string    `gorm:"size:50;not null"`
	TargetCents int64     `gorm:"not null"`
	RaisedCents int64     `gorm:"not null;default:0"`
	Description string    `gorm:"size:500"`
	Image       string    `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TicketFields are the columns every ticket table carries.
type TicketFields struct {
	Reference   string    `gorm:"size:36;not null;uniqueIndex"`
	Name        string    `gorm:"size:100;not null"`
	Email       string    `gorm:"size:254"`
	Phone       string    `gorm:"size:20"`
	Used        bool      `gorm:"not null;default:false"`
	PurchasedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// upcoming selects events dated at or after from, latest first.
func upcoming(db *gorm.DB, from time.Time, limit int) *gorm.DB {
	db = db.Where("date >= ?", from).Order("date DESC").Order("id DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	return db
}

func (d *EventDAO) insert(ctx context.Context, value interface{}) error {
	return translateError(d.conn(ctx).Create(value).Error)
}

func (d *EventDAO) updateColumns(ctx context.Context, model interface{}, id uint, values map[string]interface{}) error {
	result := d.conn(ctx).Model(model).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// countBy returns the number of rows per parent id for the given parents.
func (d *EventDAO) countBy(ctx context.Context, model interface{}, column string, ids []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		ParentID uint
		Total    int
	}
	err := d.conn(ctx).Model(model).
		Select(column+" AS parent_id, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	for _, r := range rows {
		counts[r.ParentID] = r.Total
	}
	return counts, nil
}
