package reservation

import "errors"

// ErrScrapeNotFound means an expected element never appeared.
var ErrScrapeNotFound = errors.New("expected element not found")

var ErrAuthFailure = errors.New("site rejected the credentials")

var ErrVerificationTimeout = errors.New("verification code not received")

// ErrSiteFlowChanged means the site answered with something the flow does
// not understand, e.g. a calendar header in an unknown format.
var ErrSiteFlowChanged = errors.New("site flow changed")

var ErrBrowserUnavailable = errors.New("browser unavailable")
