package cases

import "errors"

// Repository errors.
var (
	ErrCaseNotFound = errors.New("case not found")
)
