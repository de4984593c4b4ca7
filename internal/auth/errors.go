package auth

import "errors"

// ErrInvalidCredentials signals a wrong username or password.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")
