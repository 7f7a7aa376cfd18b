package postgres

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/jwalitptl/prescriptions-api/pkg/errors"
)

// translateError maps driver failures to application error kinds so the
// store's constraints surface with a meaningful status
func translateError(err error, action, resource string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "foreign_key_violation":
			return errors.ReferentialIntegrity(fmt.Sprintf("%s references a record that does not exist", resource), err)
		case "not_null_violation", "check_violation":
			return errors.RequiredField(fmt.Sprintf("%s is missing a required field", resource), err)
		}
	}

	return errors.Internal(fmt.Errorf("failed to %s %s: %w", action, resource, err))
}

// translateLookupError is translateError plus not-found handling for single-row reads
func translateLookupError(err error, resource string) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NotFound(resource, nil)
	}
	return translateError(err, "get", resource)
}
