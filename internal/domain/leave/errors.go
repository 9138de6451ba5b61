package leave

import "errors"

var (
	ErrLeaveNotFound = errors.New("Leave record not found")
)
