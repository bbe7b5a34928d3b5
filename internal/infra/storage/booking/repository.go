package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/pkg/dbmetrics"
	"github.com/lumib/salon-booking-service/pkg/psqlbuilder"
)

const bookingsTable = "bookings"

var bookingColumns = []string{
	"id",
	"service_id",
	"booking_date",
	"time_label",
	"status",
	"service_name",
	"service_price",
	"photo_urls",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository is the PostgreSQL repository for bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over a database executor
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and returns it with its generated fields.
// Inside a transaction manager callback the active transaction from the
// context is used, so availability checks and the insert share one
// serializable transaction.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(bookingsTable).
		Columns(
			"service_id",
			"booking_date",
			"time_label",
			"status",
			"service_name",
			"service_price",
			"photo_urls",
		).
		Values(
			booking.ServiceID,
			booking.Date,
			booking.TimeLabel,
			booking.Status,
			booking.ServiceName,
			booking.ServicePrice,
			pq.Array(booking.PhotoURLs),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID fetches a booking by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetWithFilter fetches bookings matching the filter.
//
// Examples:
//
//  1. Active bookings for a month (calendar occupancy, any service):
//     filter := domain.BookingsFilter{StartDate: &first, EndDate: &last}
//
//  2. Active bookings for one date and service (slot occupancy):
//     filter := domain.BookingsFilter{ServiceID: &id, StartDate: &date, EndDate: &date}
//
//  3. Every booking including cancelled ones:
//     filter := domain.BookingsFilter{IncludeInactive: true}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable)

	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	exactDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if exactDate {
		selectBuilder = selectBuilder.OrderBy("time_label ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, time_label DESC")
	}

	// Inside a transaction the exact-date read locks the rows, so the
	// availability check and the insert cannot interleave with a
	// concurrent booking of the same day.
	if dbmetrics.IsInTransaction(ctx) && exactDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Cancel marks a booking cancelled with a reason.
// Only bookings in a cancellable state are updated.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(bookingsTable).
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []string{
			string(domain.StatusCreated),
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
		}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCannotCancel
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var photoURLs pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.Date,
		&booking.TimeLabel,
		&booking.Status,
		&booking.ServiceName,
		&booking.ServicePrice,
		&photoURLs,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.PhotoURLs = photoURLs
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate booking rows: %v", ErrExecQuery, err)
	}
	return bookings, nil
}
