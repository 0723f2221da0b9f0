package booking

import "errors"

var ErrAttemptNotFound = errors.New("attempt not found")

// ErrValidation rejects a request before anything is scheduled.
var ErrValidation = errors.New("invalid attempt")

// ErrSchedulingInfra means a deferred job could not be registered or an
// attempt could not be recorded.
var ErrSchedulingInfra = errors.New("scheduling infrastructure failure")

var ErrAttemptInProgress = errors.New("attempt already in progress")
