package pastebin

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDevKey is returned by operations that require a developer key
	// when the client was constructed without one.
	ErrMissingDevKey = errors.New("developer key is missing")
	// ErrMissingCredentials is returned by Login when the account has no
	// username or password.
	ErrMissingCredentials = errors.New("username or password is missing")
	// ErrLoggedIn is returned by Login on an account that already holds a
	// user key. A fresh Account must be constructed to re-authenticate.
	ErrLoggedIn = errors.New("account is already logged in")
	// ErrNotLoggedIn is returned by account-scoped operations invoked before
	// a successful Login.
	ErrNotLoggedIn = errors.New("account is not logged in")
	// ErrContentsFetched is returned by FetchContent when the paste contents
	// are already populated.
	ErrContentsFetched = errors.New("paste contents already fetched")
	// ErrEmptyContents is returned by CreatePaste for a paste with no body.
	ErrEmptyContents = errors.New("paste contents are empty")
	// ErrPrivateRequiresAccount is returned by CreatePaste for a private
	// paste with no logged-in account attached.
	ErrPrivateRequiresAccount = errors.New("private pastes require a logged-in account")
)

// ParseError reports a response body that did not match any recognized
// success shape, or matched a shape but was missing required fields.
// The raw body is kept for diagnostics.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse response: %s", e.Err)
	}
	return fmt.Sprintf("failed to parse response: %q", e.Body)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RequestError reports a response the upstream understood but rejected,
// for example deleting a paste that does not exist. The entire response
// body is the upstream's error message.
type RequestError struct {
	Op   string
	Body string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s rejected by pastebin: %s", e.Op, e.Body)
}

// LoginError reports rejected credentials.
type LoginError struct {
	Body string
}

func (e *LoginError) Error() string {
	if e.Body == "" {
		return "login failed: empty response"
	}
	return fmt.Sprintf("login failed: %s", e.Body)
}
