package customerr

import "errors"

// AuthError marks a rejected credential (HTTP 401). A view that sees one
// drops the stored session instead of surfacing the failure.
type AuthError struct {
	Err string
}

func (e *AuthError) Error() string {
	return e.Err
}

// RoleError marks an authorization failure (HTTP 403): the credential is
// valid but the role is insufficient for the endpoint.
type RoleError struct {
	Err string
}

func (e *RoleError) Error() string {
	return e.Err
}

func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

func IsRole(err error) bool {
	var e *RoleError
	return errors.As(err, &e)
}
