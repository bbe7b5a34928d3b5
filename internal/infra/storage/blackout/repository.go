package blackout

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lumib/salon-booking-service/pkg/dbmetrics"
	"github.com/lumib/salon-booking-service/pkg/psqlbuilder"
)

const blackoutTable = "service_blackout_dates"

// Repository is the PostgreSQL repository for per-service blackout dates.
// Admins close individual services on specific days (staff leave, holidays);
// those days are excluded from selection independently of occupancy.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a blackout repository over a database executor
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDates returns the blackout dates for a service within [from, to]
func (r *Repository) GetDates(ctx context.Context, serviceID string, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("blackout_date").
		From(blackoutTable).
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.GtOrEq{"blackout_date": from}).
		Where(squirrel.LtOrEq{"blackout_date": to}).
		OrderBy("blackout_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: GetDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDates - iterate rows: %v", ErrExecQuery, err)
	}

	return dates, nil
}

// IsBlackedOut reports whether the service is closed on the given date
func (r *Repository) IsBlackedOut(ctx context.Context, serviceID string, date time.Time) (bool, error) {
	dates, err := r.GetDates(ctx, serviceID, date, date)
	if err != nil {
		return false, err
	}
	return len(dates) > 0, nil
}
