package utils

import "errors"

var (
	ErrDatabaseError  = errors.New("database error")
	ErrExportFailed   = errors.New("export failed")
)
