package pastebin

import "fmt"

// Visibility is the exposure level of a paste.
type Visibility int

const (
	VisibilityPublic   Visibility = 0
	VisibilityUnlisted Visibility = 1
	VisibilityPrivate  Visibility = 2
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityUnlisted:
		return "unlisted"
	case VisibilityPrivate:
		return "private"
	}
	return fmt.Sprintf("visibility(%d)", int(v))
}

func visibilityFromCode(code int) (Visibility, error) {
	if code < 0 || code > 2 {
		return 0, fmt.Errorf("unknown visibility code: %d", code)
	}
	return Visibility(code), nil
}

// Paste holds the contents and settings of a new or existing paste.
//
// For pastes decoded from a list or feed, Contents starts out empty and can
// be populated once through PasteLink.FetchContent.
type Paste struct {
	Contents string
	Title    string
	// Format is the syntax-highlighting short code, e.g. "go" or "text".
	// Empty means plain text.
	Format     string
	Visibility Visibility
	Expire     ExpireDate
	// Author is the posting username, when the upstream reports one.
	Author string
	// Account attributes the paste to a logged-in account. Required for
	// private pastes; the paste does not own the account.
	Account *Account
}
