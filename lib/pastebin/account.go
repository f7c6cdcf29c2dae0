package pastebin

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/codes"
)

// Account is a pastebin user. It starts out anonymous and becomes
// authenticated through Login; the user key is write-once, so a fresh
// Account is needed to re-authenticate.
type Account struct {
	Username string
	Password string

	client  *Client
	userKey string
}

// NewAccount returns an anonymous account bound to this client's developer
// key and endpoints.
func (c *Client) NewAccount(username, password string) *Account {
	return &Account{
		Username: username,
		Password: password,
		client:   c,
	}
}

// NewSessionAccount returns an already-authenticated account from a
// previously obtained user key.
func (c *Client) NewSessionAccount(userKey string) *Account {
	return &Account{
		client:  c,
		userKey: userKey,
	}
}

// LoggedIn reports whether the account holds a user session key.
func (a *Account) LoggedIn() bool {
	return a.userKey != ""
}

// UserKey returns the session key, or "" while anonymous.
func (a *Account) UserKey() string {
	return a.userKey
}

// Login exchanges the credentials for a user session key. Logging in twice
// is a usage error, not a refresh.
func (a *Account) Login(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "account:Login")
	defer span.End()

	if a.LoggedIn() {
		return ErrLoggedIn
	}
	if a.Username == "" || a.Password == "" {
		return ErrMissingCredentials
	}
	if a.client.devKey == "" {
		return ErrMissingDevKey
	}

	form := url.Values{}
	form.Set("api_dev_key", a.client.devKey)
	form.Set("api_user_name", a.Username)
	form.Set("api_user_password", a.Password)

	body, err := a.client.postForm(ctx, a.client.endpoints.APILogin, form)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return err
	}
	// rejections start with "Bad API request, ..."; anything empty is a
	// broken response, everything else is the session key itself
	if body == "" {
		span.SetStatus(codes.Error, "empty login response")
		return &LoginError{}
	}
	if strings.HasPrefix(strings.ToLower(body), "bad") {
		span.SetStatus(codes.Error, "credentials rejected")
		return &LoginError{Body: body}
	}

	a.userKey = body
	return nil
}

// Pastes lists the pastes owned by this account, newest first per the
// upstream. limit is clamped to [1, 1000]. An account with no pastes yields
// a nil slice, not an error.
func (a *Account) Pastes(ctx context.Context, limit int) ([]*PasteLink, error) {
	ctx, span := tracer.Start(ctx, "account:Pastes")
	defer span.End()

	if limit > 1000 {
		limit = 1000
	}
	if limit < 1 {
		limit = 1
	}
	if !a.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if a.client.devKey == "" {
		return nil, ErrMissingDevKey
	}

	form := url.Values{}
	form.Set("api_dev_key", a.client.devKey)
	form.Set("api_user_key", a.userKey)
	form.Set("api_results_limit", strconv.Itoa(limit))
	form.Set("api_option", "list")

	body, err := a.client.postForm(ctx, a.client.endpoints.APIPost, form)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	if body == "No pastes found." {
		return nil, nil
	}
	if classify(body) != shapeXMLPasteList {
		span.SetStatus(codes.Error, "unexpected response shape")
		return nil, &ParseError{Body: body}
	}

	links, err := decodeXMLPasteList(body)
	if err != nil {
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}
	a.client.adopt(links)
	for _, l := range links {
		l.Paste.Account = a
	}
	return links, nil
}

// Details fetches the account profile snapshot.
func (a *Account) Details(ctx context.Context) (*AccountDetails, error) {
	ctx, span := tracer.Start(ctx, "account:Details")
	defer span.End()

	if !a.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if a.client.devKey == "" {
		return nil, ErrMissingDevKey
	}

	form := url.Values{}
	form.Set("api_dev_key", a.client.devKey)
	form.Set("api_user_key", a.userKey)
	form.Set("api_option", "userdetails")

	body, err := a.client.postForm(ctx, a.client.endpoints.APIPost, form)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	if classify(body) != shapeXMLUser {
		span.SetStatus(codes.Error, "unexpected response shape")
		return nil, &ParseError{Body: body}
	}

	details, err := decodeXMLUser(body)
	if err != nil {
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}
	return details, nil
}

// AccountDetails is an immutable snapshot of an account's profile settings.
type AccountDetails struct {
	Username string
	// Format is the default syntax short code for new pastes.
	Format string
	// Expiration is the default expire token, "N" when never.
	Expiration string
	AvatarURL  string
	// Visibility is the default exposure for new pastes.
	Visibility Visibility
	Website    string
	Email      string
	Location   string

	accountType int
}

// Pro reports whether the account is a paid tier, which the scraping
// endpoints require.
func (d *AccountDetails) Pro() bool {
	return d.accountType == 1
}
