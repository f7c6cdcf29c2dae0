package pastebin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpireDateRoundTrip(t *testing.T) {
	for e := ExpireNever; e <= ExpireOneMonth; e++ {
		decoded := ExpireDateFromSeconds(expireSeconds[e])
		if e == ExpireOneMonth {
			// never and one month share "no finite duration" on the wire,
			// so one month decodes as never
			require.Equal(t, ExpireNever, decoded)
			continue
		}
		require.Equal(t, e, decoded)
	}
}

func TestExpireDateFromSecondsFallback(t *testing.T) {
	require.Equal(t, ExpireOneMonth, ExpireDateFromSeconds(12345))
	require.Equal(t, ExpireOneMonth, ExpireDateFromSeconds(0))
}

func TestExpireDateFromToken(t *testing.T) {
	for e := ExpireNever; e <= ExpireOneMonth; e++ {
		decoded, ok := ExpireDateFromToken(e.Token())
		require.True(t, ok)
		require.Equal(t, e, decoded)
	}

	_, ok := ExpireDateFromToken("42Y")
	require.False(t, ok)
}
