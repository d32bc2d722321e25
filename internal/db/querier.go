package db

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Querier runs a parameterized read query and scans the rows into dest,
// a pointer to a slice of structs whose columns match the projection aliases.
type Querier interface {
	Query(ctx context.Context, dest interface{}, sql string, args ...interface{}) error
	// Dialect names the SQL dialect the queries are executed against.
	Dialect() string
}

// GormQuerier implements Querier on top of gorm's Raw/Scan.
type GormQuerier struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormQuerier wraps database. A positive timeout bounds every query.
func NewGormQuerier(database *gorm.DB, timeout time.Duration) *GormQuerier {
	return &GormQuerier{db: database, timeout: timeout}
}

func (q *GormQuerier) Query(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}
	return q.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error
}

func (q *GormQuerier) Dialect() string {
	return q.db.Dialector.Name()
}

// Ping checks that the store is reachable.
func (q *GormQuerier) Ping(ctx context.Context) error {
	sqlDB, err := q.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
