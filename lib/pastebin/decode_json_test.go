package pastebin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleFeed = `[
{"scrape_url":"https://pastebin.com/api_scrape_item.php?i=aaaa1111","full_url":"https://pastebin.com/aaaa1111","date":"1442911802","key":"aaaa1111","size":"890","expire":"1442998202","title":"once upon a time","syntax":"java","user":"admin","hits":"9"},
{"scrape_url":"https://pastebin.com/api_scrape_item.php?i=bbbb2222","full_url":"https://pastebin.com/bbbb2222","date":"1442911000","key":"bbbb2222","size":"101","expire":"0","title":"","syntax":"text","user":"","hits":""}
]`

// the older feed variant has no user or hits keys at all
const sampleFeedNoUser = `[
{"full_url":"https://pastebin.com/cccc3333","date":"1442911802","key":"cccc3333","size":"890","expire":"0","title":"t","syntax":"go"}
]`

func TestDecodeJSONFeed(t *testing.T) {
	links, err := decodeJSONFeed(sampleFeed)
	require.NoError(t, err)
	require.Len(t, links, 2)

	first := links[0]
	require.Equal(t, "aaaa1111", first.Key)
	require.Equal(t, "once upon a time", first.Paste.Title)
	require.Equal(t, "java", first.Paste.Format)
	require.Equal(t, "admin", first.Paste.Author)
	require.Equal(t, 9, first.Hits)
	require.Equal(t, time.Unix(1442911802, 0), first.Created)
	require.Equal(t, ExpireOneDay, first.Paste.Expire)

	second := links[1]
	require.Equal(t, "bbbb2222", second.Key)
	require.Equal(t, 0, second.Hits)
	require.Equal(t, ExpireNever, second.Paste.Expire)
}

func TestDecodeJSONFeedVisibilityAlwaysPublic(t *testing.T) {
	links, err := decodeJSONFeed(sampleFeed)
	require.NoError(t, err)
	for _, link := range links {
		require.Equal(t, VisibilityPublic, link.Paste.Visibility)
	}
}

func TestDecodeJSONFeedMissingOptionalKeys(t *testing.T) {
	links, err := decodeJSONFeed(sampleFeedNoUser)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Empty(t, links[0].Paste.Author)
	require.Zero(t, links[0].Hits)
}

func TestDecodeJSONFeedEmpty(t *testing.T) {
	links, err := decodeJSONFeed("[]")
	require.NoError(t, err)
	require.Empty(t, links)
}

func TestDecodeJSONFeedMalformed(t *testing.T) {
	var parseErr *ParseError

	_, err := decodeJSONFeed(`[{"full_url":`)
	require.ErrorAs(t, err, &parseErr)

	_, err = decodeJSONFeed(`[{"full_url":"https://pastebin.com/x","date":"soon","expire":"0"}]`)
	require.ErrorAs(t, err, &parseErr)
}
