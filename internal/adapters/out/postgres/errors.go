package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"logiflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// storeError marks failures to reach the database as errs.ErrStorageUnavailable.
// Query errors reported by the server are returned unchanged.
func storeError(operation string, err error) error {
	if unreachable(err) {
		return errs.NewStorageUnavailableErrorWithCause(operation, err)
	}
	return err
}

func unreachable(err error) bool {
	var (
		connectErr *pgconn.ConnectError
		opErr      *net.OpError
	)
	return errors.As(err, &connectErr) ||
		errors.As(err, &opErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone)
}
