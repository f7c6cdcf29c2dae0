package pastebin

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// feedItem is one object of the scraping feed. The upstream quotes every
// value as a string. The feed schema has drifted over time: "user" and
// "hits" exist in only one of the two observed variants, so both are
// optional and default to empty/zero.
type feedItem struct {
	Syntax  string `json:"syntax"`
	Title   string `json:"title"`
	User    string `json:"user"`
	Expire  string `json:"expire"`
	Date    string `json:"date"`
	FullURL string `json:"full_url"`
	Hits    string `json:"hits"`
}

// decodeJSONFeed turns a scraping-feed body into paste links. The feed only
// ever lists public pastes and carries no visibility field, so every decoded
// paste is public by construction.
func decodeJSONFeed(body string) ([]*PasteLink, error) {
	var items []feedItem
	err := json.Unmarshal([]byte(body), &items)
	if err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}

	links := make([]*PasteLink, 0, len(items))
	for _, item := range items {
		link, err := feedItemToLink(item)
		if err != nil {
			return nil, &ParseError{Body: body, Err: err}
		}
		links = append(links, link)
	}
	return links, nil
}

func feedItemToLink(item feedItem) (*PasteLink, error) {
	expire, err := strconv.ParseInt(item.Expire, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid expire timestamp %q: %w", item.Expire, err)
	}
	date, err := strconv.ParseInt(item.Date, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid paste timestamp %q: %w", item.Date, err)
	}

	hits := 0
	if item.Hits != "" {
		hits, err = strconv.Atoi(item.Hits)
		if err != nil {
			return nil, fmt.Errorf("invalid hit count %q: %w", item.Hits, err)
		}
	}

	paste := &Paste{
		Format:     item.Syntax,
		Title:      item.Title,
		Author:     item.User,
		Visibility: VisibilityPublic,
		Expire:     expireFromTimestamps(expire, date),
	}
	link, err := newPasteLink(paste, item.FullURL, time.Unix(date, 0))
	if err != nil {
		return nil, err
	}
	link.Hits = hits
	return link, nil
}
