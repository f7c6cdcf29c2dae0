package commands

import (
	"time"

	"pastebinkit/cmd/pastebin-cli/utils"
	"pastebinkit/lib/pastebin"

	"github.com/jedib0t/go-pretty/v6/table"
)

func renderLinks(links []*pastebin.PasteLink) {
	t := utils.NewTable()
	t.AppendHeader(table.Row{"key", "title", "format", "visibility", "expires", "hits", "created"})
	for _, l := range links {
		t.AppendRow(table.Row{
			l.Key,
			l.Paste.Title,
			l.Paste.Format,
			l.Paste.Visibility,
			l.Paste.Expire,
			l.Hits,
			l.Created.Format(time.DateTime),
		})
	}
	t.Render()
}
