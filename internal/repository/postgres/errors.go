package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes the repositories translate into domain errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isPQCode(err error, code string) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && string(perr.Code) == code
}
