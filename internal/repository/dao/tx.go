package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
	ErrSeatTaken = errors.New("concert seat already taken")
)

type txKey struct{}

// WithTx runs fn inside a transaction carried by the returned context.
// Nested calls join the outer transaction.
func (d *EventDAO) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func txFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey{}).(*gorm.DB)
	return tx
}

// conn returns the transaction bound to ctx, or the pool when there is none.
func (d *EventDAO) conn(ctx context.Context) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx.WithContext(ctx)
	}
	return d.db.WithContext(ctx)
}

// forUpdate locks the selected rows until the surrounding transaction ends.
func (d *EventDAO) forUpdate(ctx context.Context) *gorm.DB {
	return d.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if pgErr.ConstraintName == concertSeatIndex {
			return ErrSeatTaken
		}
		return ErrDuplicate
	}

	return err
}
