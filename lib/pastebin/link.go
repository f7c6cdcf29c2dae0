package pastebin

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

// PasteLink is an existing, addressable paste on pastebin: the paste
// settings plus its URL, unique key, hit count and creation time.
type PasteLink struct {
	Paste *Paste
	URL   *url.URL
	// Key is the unique paste identifier, the last segment of the URL path.
	Key     string
	Hits    int
	Created time.Time

	client  *Client
	fetched bool
}

func newPasteLink(paste *Paste, rawURL string, created time.Time) (*PasteLink, error) {
	link, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid paste url %q: %w", rawURL, err)
	}
	key := path.Base(strings.TrimSuffix(link.Path, "/"))
	if key == "." || key == "/" || key == "" {
		return nil, fmt.Errorf("paste url %q has no key segment", rawURL)
	}
	return &PasteLink{
		Paste:   paste,
		URL:     link,
		Key:     key,
		Created: created,
	}, nil
}

// FetchContent downloads the raw paste body and stores it on the Paste.
// The fetch happens at most once: calling it again after the contents are
// populated returns ErrContentsFetched and leaves them untouched.
func (l *PasteLink) FetchContent(ctx context.Context) error {
	if l.fetched || l.Paste.Contents != "" {
		return ErrContentsFetched
	}
	contents, err := l.client.RawContent(ctx, l.Key)
	if err != nil {
		return err
	}
	l.Paste.Contents = contents
	l.fetched = true
	return nil
}

// Delete removes the paste from pastebin. The account must be the one the
// paste was created under.
func (l *PasteLink) Delete(ctx context.Context, account *Account) error {
	return l.client.deletePaste(ctx, account, l.Key)
}
