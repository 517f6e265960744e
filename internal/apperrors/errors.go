package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not perform the action. The
// restricted-party policy surfaces through this error.
var ErrForbidden = errors.New("forbidden")

// ErrUpstream indicates a collaborator service (party directory or ledger
// store) failed; callers keep their previous state when they see it.
var ErrUpstream = errors.New("upstream service error")
