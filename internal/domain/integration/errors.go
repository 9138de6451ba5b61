package integration

import "errors"

var (
	ErrTokenNotFound = errors.New("No stored token for provider; authorization required")
)
