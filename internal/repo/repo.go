package repo

import "errors"

// ErrNoRowsAffected is returned by update and delete statements that matched no row.
// Reads report absence with pgx.ErrNoRows.
var ErrNoRowsAffected = errors.New("no rows affected")
