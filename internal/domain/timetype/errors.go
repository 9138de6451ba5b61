package timetype

import "errors"

var (
	ErrTimeTypeNotFound   = errors.New("Time type not found")
	ErrTimeTypeNameExists = errors.New("Time type name already exists")
)
