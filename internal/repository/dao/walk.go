package dao

import (
	"context"
	"time"
)

type Walk struct {
	ID uint `gorm:"primaryKey"`
	EventFields
	Route                  string    `gorm:"size:200"`
	RegistrationPriceCents int64     `gorm:"not null"`
	MaxParticipants        int       `gorm:"not null"`
	Bibs                   []WalkBib `gorm:"foreignKey:WalkID;constraint:OnDelete:CASCADE"`
}

type WalkBib struct {
	ID uint `gorm:"primaryKey"`
	TicketFields
	WalkID    uint   `gorm:"not null;uniqueIndex:idx_walk_bib_number"`
	Number    int    `gorm:"not null;uniqueIndex:idx_walk_bib_number"`
	ShirtSize string `gorm:"size:3;not null"`
}

// BibStats summarises the bibs issued for a walk.
type BibStats struct {
	Count     int
	MaxNumber int
}

func (d *EventDAO) CreateWalk(ctx context.Context, walk Walk) (Walk, error) {
	if err := d.insert(ctx, &walk); err != nil {
		return Walk{}, err
	}
	return walk, nil
}

func (d *EventDAO) ListWalks(ctx context.Context, from time.Time, limit int) ([]Walk, error) {
	var walks []Walk
	if err := upcoming(d.conn(ctx), from, limit).Find(&walks).Error; err != nil {
		return nil, translateError(err)
	}
	return walks, nil
}

func (d *EventDAO) GetWalk(ctx context.Context, id uint) (Walk, error) {
	var walk Walk
	if err := d.conn(ctx).First(&walk, id).Error; err != nil {
		return Walk{}, translateError(err)
	}
	return walk, nil
}

func (d *EventDAO) LockWalk(ctx context.Context, id uint) (Walk, error) {
	var walk Walk
	if err := d.forUpdate(ctx).First(&walk, id).Error; err != nil {
		return Walk{}, translateError(err)
	}
	return walk, nil
}

func (d *EventDAO) CountBibs(ctx context.Context, walkIDs []uint) (map[uint]int, error) {
	return d.countBy(ctx, &WalkBib{}, "walk_id", walkIDs)
}

func (d *EventDAO) WalkBibStats(ctx context.Context, walkID uint) (BibStats, error) {
	var stats BibStats
	err := d.conn(ctx).Model(&WalkBib{}).
		Select("COUNT(*) AS count, COALESCE(MAX(number), 0) AS max_number").
		Where("walk_id = ?", walkID).
		Scan(&stats).Error
	if err != nil {
		return BibStats{}, translateError(err)
	}
	return stats, nil
}

func (d *EventDAO) InsertWalkBib(ctx context.Context, bib WalkBib, raisedCents int64) (WalkBib, error) {
	err := d.WithTx(ctx, func(ctx context.Context) error {
		if err := d.insert(ctx, &bib); err != nil {
			return err
		}
		return d.updateColumns(ctx, &Walk{}, bib.WalkID, map[string]interface{}{
			"raised_cents": raisedCents,
		})
	})
	if err != nil {
		return WalkBib{}, err
	}
	return bib, nil
}
