package repository

import "errors"

// ErrDuplicateEmail is returned by Create when the email unique constraint
// is violated, including the loser of a concurrent-registration race.
var ErrDuplicateEmail = errors.New("email already registered")
