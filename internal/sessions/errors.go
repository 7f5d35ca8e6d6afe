package sessions

import "errors"

var (
	ErrSessionIDRequired = errors.New("session id required")
	ErrStoreClosed       = errors.New("history store closed")
)
