package booking

import (
	"github.com/lumib/salon-booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics query interfaces so the repository works both on a
// raw *sql.DB and on the metrics-wrapped handle
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
