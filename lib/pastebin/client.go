// Package pastebin is a client for the pastebin.com HTTP API.
//
// The upstream API predates consistent HTTP semantics: failures arrive as
// 200 responses whose entire body is an error sentinel, list responses are
// rootless XML fragments, and the newer scraping feed is a JSON array with
// its own field names. This package classifies every response body by shape
// before decoding and maps both wire formats onto one domain model.
package pastebin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pastebinkit/lib/restyutil"
	"pastebinkit/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// Endpoints is the set of upstream URLs every operation agrees on.
type Endpoints struct {
	// APIPost serves the paste/list/trends/userdetails/delete options.
	APIPost string
	// APILogin exchanges credentials for a user session key.
	APILogin string
	// Raw serves verbatim paste bodies, parameterized by ?i=<key>.
	Raw string
	// Scraping is the most-recent-pastes feed. Pro accounts only.
	Scraping string
	// ScrapeItemMeta serves single-paste metadata, ?i=<key>. Pro only.
	ScrapeItemMeta string
}

// PastebinEndpoints points at the real pastebin.com API.
var PastebinEndpoints = Endpoints{
	APIPost:        "https://pastebin.com/api/api_post.php",
	APILogin:       "https://pastebin.com/api/api_login.php",
	Raw:            "https://pastebin.com/raw.php",
	Scraping:       "https://pastebin.com/api_scraping.php",
	ScrapeItemMeta: "https://pastebin.com/api_scrape_item_meta.php",
}

type ClientOptions struct {
	// DevKey is the per-integration developer key from the pastebin API
	// page. Required for everything except the scraping endpoints.
	DevKey string
	// Endpoints defaults to PastebinEndpoints when zero.
	Endpoints Endpoints
	// Timeout defaults to 30s.
	Timeout time.Duration
}

// Client issues requests against one set of endpoints. All methods are
// synchronous, one round trip per call; concurrency is the caller's
// business, the client itself holds no mutable state.
type Client struct {
	http      *resty.Client
	endpoints Endpoints
	devKey    string
}

func NewClient(opts ClientOptions) *Client {
	if opts.Endpoints == (Endpoints{}) {
		opts.Endpoints = PastebinEndpoints
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	httpc := resty.New()
	httpc.SetHeader("user-agent", "pastebinkit")
	httpc.SetTimeout(opts.Timeout)

	if restyInstrumentOutput != nil {
		restyutil.InstrumentClient(httpc, tracer, restyInstrumentOutput)
	} else {
		telemetry.InstrumentResty(httpc, "pastebinkit.lib.pastebin.http")
	}

	return &Client{
		http:      httpc,
		endpoints: opts.Endpoints,
		devKey:    opts.DevKey,
	}
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("pastebin request failed: %w", err)
	}
	return res.String(), nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) (string, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	res, err := req.Get(endpoint)
	if err != nil {
		return "", fmt.Errorf("pastebin request failed: %w", err)
	}
	return res.String(), nil
}

// CreatePaste publishes a new paste and returns its link. Contents and the
// client's developer key must be non-empty; a private paste must carry a
// logged-in account.
func (c *Client) CreatePaste(ctx context.Context, paste *Paste) (*PasteLink, error) {
	ctx, span := tracer.Start(ctx, "client:CreatePaste")
	defer span.End()

	if paste.Contents == "" {
		return nil, ErrEmptyContents
	}
	if c.devKey == "" {
		return nil, ErrMissingDevKey
	}
	if paste.Visibility == VisibilityPrivate &&
		(paste.Account == nil || !paste.Account.LoggedIn()) {
		return nil, ErrPrivateRequiresAccount
	}

	form := url.Values{}
	form.Set("api_dev_key", c.devKey)
	form.Set("api_option", "paste")
	form.Set("api_paste_code", paste.Contents)
	form.Set("api_paste_private", strconv.Itoa(int(paste.Visibility)))
	form.Set("api_paste_expire_date", paste.Expire.Token())
	if paste.Account != nil && paste.Account.LoggedIn() {
		form.Set("api_user_key", paste.Account.UserKey())
	}
	if paste.Title != "" {
		form.Set("api_paste_name", paste.Title)
	}
	if paste.Format != "" {
		form.Set("api_paste_format", paste.Format)
	}

	body, err := c.postForm(ctx, c.endpoints.APIPost, form)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	// success is a bare URL, anything else is the upstream complaining
	if classify(body) != shapePlain || !strings.HasPrefix(body, "http") {
		span.SetStatus(codes.Error, "upstream rejected paste")
		return nil, &RequestError{Op: "create paste", Body: body}
	}

	link, err := newPasteLink(paste, body, time.Now().Truncate(time.Second))
	if err != nil {
		span.SetStatus(codes.Error, "bad paste url")
		return nil, &ParseError{Body: body, Err: err}
	}
	link.client = c
	return link, nil
}

// Trending returns the currently trending public pastes.
func (c *Client) Trending(ctx context.Context) ([]*PasteLink, error) {
	ctx, span := tracer.Start(ctx, "client:Trending")
	defer span.End()

	if c.devKey == "" {
		return nil, ErrMissingDevKey
	}

	form := url.Values{}
	form.Set("api_dev_key", c.devKey)
	form.Set("api_option", "trends")

	body, err := c.postForm(ctx, c.endpoints.APIPost, form)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, err
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
	c.adopt(links)
	return links, nil
}

// ScrapeOptions narrow the scraping feed.
type ScrapeOptions struct {
	// Limit caps the number of items; the upstream accepts up to 250 and
	// defaults to 50. Zero means "let the server pick".
	Limit int
	// Lang filters by syntax short code, e.g. "go".
	Lang string
}

// MostRecent returns the newest public pastes from the scraping feed. The
// upstream gates this behind a pro account with a white-listed IP; no local
// check is made, a rejection simply fails to classify as a feed.
func (c *Client) MostRecent(ctx context.Context, opts ScrapeOptions) ([]*PasteLink, error) {
	ctx, span := tracer.Start(ctx, "client:MostRecent")
	defer span.End()

	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Lang != "" {
		query.Set("lang", opts.Lang)
	}

	body, err := c.get(ctx, c.endpoints.Scraping, query)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	if classify(body) != shapeJSONArray {
		span.SetStatus(codes.Error, "unexpected response shape")
		return nil, &ParseError{Body: body}
	}

	links, err := decodeJSONFeed(body)
	if err != nil {
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}
	c.adopt(links)
	return links, nil
}

// PasteMetadata returns the metadata of a single paste through the scraping
// API. Same pro-account gating as MostRecent.
func (c *Client) PasteMetadata(ctx context.Context, key string) (*PasteLink, error) {
	ctx, span := tracer.Start(ctx, "client:PasteMetadata")
	defer span.End()

	body, err := c.get(ctx, c.endpoints.ScrapeItemMeta, url.Values{"i": {key}})
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	if classify(body) != shapeJSONArray {
		span.SetStatus(codes.Error, "unexpected response shape")
		return nil, &ParseError{Body: body}
	}

	links, err := decodeJSONFeed(body)
	if err != nil {
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}
	if len(links) != 1 {
		span.SetStatus(codes.Error, "unexpected item count")
		return nil, &ParseError{Body: body, Err: fmt.Errorf("expected 1 metadata item, got %d", len(links))}
	}
	c.adopt(links)
	return links[0], nil
}

// RawContent fetches the verbatim body of a paste by key.
func (c *Client) RawContent(ctx context.Context, key string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:RawContent")
	defer span.End()

	body, err := c.get(ctx, c.endpoints.Raw, url.Values{"i": {key}})
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return "", err
	}
	return body, nil
}

func (c *Client) deletePaste(ctx context.Context, account *Account, key string) error {
	ctx, span := tracer.Start(ctx, "client:deletePaste")
	defer span.End()

	if c.devKey == "" {
		return ErrMissingDevKey
	}
	if account == nil || !account.LoggedIn() {
		return ErrNotLoggedIn
	}

	form := url.Values{}
	form.Set("api_dev_key", c.devKey)
	form.Set("api_user_key", account.UserKey())
	form.Set("api_paste_key", key)
	form.Set("api_option", "delete")

	body, err := c.postForm(ctx, c.endpoints.APIPost, form)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return err
	}
	if body != "Paste Removed" {
		span.SetStatus(codes.Error, "upstream rejected delete")
		return &RequestError{Op: "delete paste", Body: body}
	}
	return nil
}

func (c *Client) adopt(links []*PasteLink) {
	for _, l := range links {
		l.client = c
	}
}
