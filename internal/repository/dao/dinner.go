package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Dinner struct {
	ID uint `gorm:"primaryKey"`
	EventFields
	Menu                string        `gorm:"size:1000"`
	NumTables           int           `gorm:"not null"`
	SeatsPerTable       int           `gorm:"not null"`
	PricePerPersonCents int64         `gorm:"not null"`
	Tables              []DinnerTable `gorm:"foreignKey:DinnerID;constraint:OnDelete:CASCADE"`
}

type DinnerTable struct {
	ID          uint          `gorm:"primaryKey"`
	DinnerID    uint          `gorm:"not null;uniqueIndex:idx_dinner_table_number"`
	Number      int           `gorm:"not null;uniqueIndex:idx_dinner_table_number"`
	Assignments int           `gorm:"not null;default:0"`
	Entries     []DinnerEntry `gorm:"foreignKey:TableID;constraint:OnDelete:CASCADE"`
}

func (DinnerTable) TableName() string {
	return "dinner_tables"
}

type DinnerEntry struct {
	ID uint `gorm:"primaryKey"`
	TicketFields
	TableID uint `gorm:"not null;index"`
}

func orderedTables(db *gorm.DB) *gorm.DB {
	return db.Order("number")
}

// CreateDinner inserts the dinner together with its tables.
func (d *EventDAO) CreateDinner(ctx context.Context, dinner Dinner) (Dinner, error) {
	if err := d.insert(ctx, &dinner); err != nil {
		return Dinner{}, err
	}
	return dinner, nil
}

func (d *EventDAO) ListDinners(ctx context.Context, from time.Time, limit int) ([]Dinner, error) {
	var dinners []Dinner
	err := upcoming(d.conn(ctx), from, limit).Preload("Tables", orderedTables).Find(&dinners).Error
	if err != nil {
		return nil, translateError(err)
	}
	return dinners, nil
}

func (d *EventDAO) GetDinner(ctx context.Context, id uint) (Dinner, error) {
	var dinner Dinner
	if err := d.conn(ctx).Preload("Tables", orderedTables).First(&dinner, id).Error; err != nil {
		return Dinner{}, translateError(err)
	}
	return dinner, nil
}

func (d *EventDAO) LockDinner(ctx context.Context, id uint) (Dinner, error) {
	var dinner Dinner
	if err := d.forUpdate(ctx).First(&dinner, id).Error; err != nil {
		return Dinner{}, translateError(err)
	}
	return dinner, nil
}

func (d *EventDAO) ListTables(ctx context.Context, dinnerID uint) ([]DinnerTable, error) {
	if _, err := d.GetDinner(ctx, dinnerID); err != nil {
		return nil, err
	}

	var tables []DinnerTable
	if err := orderedTables(d.conn(ctx)).Where("dinner_id = ?", dinnerID).Find(&tables).Error; err != nil {
		return nil, translateError(err)
	}
	return tables, nil
}

func (d *EventDAO) GetTable(ctx context.Context, id uint) (DinnerTable, error) {
	var table DinnerTable
	if err := d.conn(ctx).First(&table, id).Error; err != nil {
		return DinnerTable{}, translateError(err)
	}
	return table, nil
}

func (d *EventDAO) LockTable(ctx context.Context, id uint) (DinnerTable, error) {
	var table DinnerTable
	if err := d.forUpdate(ctx).First(&table, id).Error; err != nil {
		return DinnerTable{}, translateError(err)
	}
	return table, nil
}

// InsertDinnerEntry stores the entry and writes the new table and dinner
// counters.
func (d *EventDAO) InsertDinnerEntry(ctx context.Context, entry DinnerEntry, assignments int, raisedCents int64) (DinnerEntry, error) {
	err := d.WithTx(ctx, func(ctx context.Context) error {
		if err := d.insert(ctx, &entry); err != nil {
			return err
		}

		table, err := d.GetTable(ctx, entry.TableID)
		if err != nil {
			return err
		}
		if err := d.updateColumns(ctx, &DinnerTable{}, table.ID, map[string]interface{}{
			"assignments": assignments,
		}); err != nil {
			return err
		}

		return d.updateColumns(ctx, &Dinner{}, table.DinnerID, map[string]interface{}{
			"raised_cents": raisedCents,
		})
	})
	if err != nil {
		return DinnerEntry{}, err
	}
	return entry, nil
}
