package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrIntegrityCheckFailed is logged when the HashSHA256 header does not
	// match the request body.
	ErrIntegrityCheckFailed = errors.New("request body signature mismatch")

	ErrRateLimited = errors.New("vault secret attempts are rate limited")
)
