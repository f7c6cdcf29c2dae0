package pastebin

import (
	"encoding/xml"
	"fmt"
	"time"
)

// The list responses are a bare sequence of sibling <paste> elements with no
// shared root, which is not a well-formed document on its own. Wrapping in a
// throwaway root before unmarshalling is a decoding detail, not part of the
// protocol.
const syntheticRoot = "<pastes>%s</pastes>"

// Every field is a pointer so an absent child is distinguishable from a
// zero value; a missing child fails the whole decode.
type xmlPasteRow struct {
	Format  *string `xml:"paste_format_short"`
	Title   *string `xml:"paste_title"`
	Private *int    `xml:"paste_private"`
	Hits    *int    `xml:"paste_hits"`
	Expire  *int64  `xml:"paste_expire_date"`
	Date    *int64  `xml:"paste_date"`
	URL     *string `xml:"paste_url"`
}

type xmlPasteList struct {
	Pastes []xmlPasteRow `xml:"paste"`
}

func (row xmlPasteRow) validate() error {
	switch {
	case row.Format == nil:
		return fmt.Errorf("paste element is missing paste_format_short")
	case row.Title == nil:
		return fmt.Errorf("paste element is missing paste_title")
	case row.Private == nil:
		return fmt.Errorf("paste element is missing paste_private")
	case row.Hits == nil:
		return fmt.Errorf("paste element is missing paste_hits")
	case row.Expire == nil:
		return fmt.Errorf("paste element is missing paste_expire_date")
	case row.Date == nil:
		return fmt.Errorf("paste element is missing paste_date")
	case row.URL == nil:
		return fmt.Errorf("paste element is missing paste_url")
	}
	return nil
}

// decodeXMLPasteList turns a list/trends response body into paste links in
// document order. The body must already be classified as shapeXMLPasteList.
// No partial results: one bad element discards the batch.
func decodeXMLPasteList(body string) ([]*PasteLink, error) {
	var list xmlPasteList
	err := xml.Unmarshal([]byte(fmt.Sprintf(syntheticRoot, body)), &list)
	if err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}

	links := make([]*PasteLink, 0, len(list.Pastes))
	for _, row := range list.Pastes {
		if err := row.validate(); err != nil {
			return nil, &ParseError{Body: body, Err: err}
		}
		visibility, err := visibilityFromCode(*row.Private)
		if err != nil {
			return nil, &ParseError{Body: body, Err: err}
		}

		paste := &Paste{
			Format:     *row.Format,
			Title:      *row.Title,
			Visibility: visibility,
			Expire:     expireFromTimestamps(*row.Expire, *row.Date),
		}
		link, err := newPasteLink(paste, *row.URL, time.Unix(*row.Date, 0))
		if err != nil {
			return nil, &ParseError{Body: body, Err: err}
		}
		if *row.Hits < 0 {
			return nil, &ParseError{Body: body, Err: fmt.Errorf("negative hit count: %d", *row.Hits)}
		}
		link.Hits = *row.Hits
		links = append(links, link)
	}
	return links, nil
}

// expireFromTimestamps reverse-maps the absolute expiry the server reports
// back to a symbolic value. Zero means the paste never expires.
func expireFromTimestamps(expire, created int64) ExpireDate {
	if expire == 0 {
		return ExpireNever
	}
	return ExpireDateFromSeconds(expire - created)
}

type xmlUser struct {
	Name        *string `xml:"user_name"`
	FormatShort *string `xml:"user_format_short"`
	Expiration  *string `xml:"user_expiration"`
	AvatarURL   *string `xml:"user_avatar_url"`
	Private     *int    `xml:"user_private"`
	Website     *string `xml:"user_website"`
	Email       *string `xml:"user_email"`
	Location    *string `xml:"user_location"`
	AccountType *int    `xml:"user_account_type"`
}

func (u xmlUser) validate() error {
	switch {
	case u.Name == nil:
		return fmt.Errorf("user element is missing user_name")
	case u.FormatShort == nil:
		return fmt.Errorf("user element is missing user_format_short")
	case u.Expiration == nil:
		return fmt.Errorf("user element is missing user_expiration")
	case u.AvatarURL == nil:
		return fmt.Errorf("user element is missing user_avatar_url")
	case u.Private == nil:
		return fmt.Errorf("user element is missing user_private")
	case u.Website == nil:
		return fmt.Errorf("user element is missing user_website")
	case u.Email == nil:
		return fmt.Errorf("user element is missing user_email")
	case u.Location == nil:
		return fmt.Errorf("user element is missing user_location")
	case u.AccountType == nil:
		return fmt.Errorf("user element is missing user_account_type")
	}
	return nil
}

// decodeXMLUser parses a userdetails response: exactly one <user> element,
// which is a complete document already so no synthetic root is needed.
func decodeXMLUser(body string) (*AccountDetails, error) {
	var user xmlUser
	err := xml.Unmarshal([]byte(body), &user)
	if err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}
	if err := user.validate(); err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}
	visibility, err := visibilityFromCode(*user.Private)
	if err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}
	return &AccountDetails{
		Username:    *user.Name,
		Format:      *user.FormatShort,
		Expiration:  *user.Expiration,
		AvatarURL:   *user.AvatarURL,
		Visibility:  visibility,
		Website:     *user.Website,
		Email:       *user.Email,
		Location:    *user.Location,
		accountType: *user.AccountType,
	}, nil
}
