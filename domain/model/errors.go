package model

import "errors"

var (
	ErrLayoutExists       = errors.New("layout already exists")
	ErrLayoutNotFound     = errors.New("layout not found")
	ErrLayoutInvalid      = errors.New("layout invalid")
	ErrWorkspaceInvalid   = errors.New("workspace invalid")
	ErrDashboardNotFound  = errors.New("dashboard not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnsupportedVersion = errors.New("unsupported document version")
	ErrMalformedDocument  = errors.New("malformed document")
)
