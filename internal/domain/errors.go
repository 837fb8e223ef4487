package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("resource not found")

	// ErrSlugTaken is returned by the repository when an insert or update
	// hits the unique constraint on slug. The database constraint is the
	// real guarantee; the pre-write availability check only exists so the
	// form can show the error before submitting.
	ErrSlugTaken = errors.New("slug already taken")
)
