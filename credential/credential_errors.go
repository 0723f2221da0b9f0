package credential

import "errors"

var ErrCredentialNotFound = errors.New("credential not found")

var ErrInvalidCredential = errors.New("invalid credential")
