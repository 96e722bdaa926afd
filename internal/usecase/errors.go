package usecase

import "errors"

// ErrNoCredentials means ChittyID had nothing for us (or was down) and
// the cache was cold. Callers treat it as "send skipped".
var ErrNoCredentials = errors.New("twilio credentials unavailable")
