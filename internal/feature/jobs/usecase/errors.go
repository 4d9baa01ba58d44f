// Package usecase implements the business logic for the jobs feature.
package usecase

import "errors"

var (
	// ErrJobNotFound is returned when no job matches the given ID, or when
	// the job exists but is owned by someone else. The two cases are
	// deliberately indistinguishable so non-owners learn nothing about a
	// job's existence.
	ErrJobNotFound = errors.New("job not found")
)
