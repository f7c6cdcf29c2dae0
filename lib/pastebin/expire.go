package pastebin

// ExpireDate is the lifetime of a paste, out of the fixed set the upstream
// API accepts for the api_paste_expire_date parameter.
type ExpireDate int

const (
	ExpireNever ExpireDate = iota
	ExpireTenMinutes
	ExpireOneHour
	ExpireOneDay
	ExpireOneWeek
	ExpireTwoWeeks
	ExpireOneMonth
)

var expireTokens = map[ExpireDate]string{
	ExpireNever:      "N",
	ExpireTenMinutes: "10M",
	ExpireOneHour:    "1H",
	ExpireOneDay:     "1D",
	ExpireOneWeek:    "1W",
	ExpireTwoWeeks:   "2W",
	ExpireOneMonth:   "1M",
}

// expireSeconds holds the duration each value stands for. Never and one
// month both map to -1: the upstream never reports a finite one-month span,
// so the two are indistinguishable on the wire.
var expireSeconds = map[ExpireDate]int64{
	ExpireNever:      -1,
	ExpireTenMinutes: 10 * 60,
	ExpireOneHour:    60 * 60,
	ExpireOneDay:     60 * 60 * 24,
	ExpireOneWeek:    60 * 60 * 24 * 7,
	ExpireTwoWeeks:   60 * 60 * 24 * 14,
	ExpireOneMonth:   -1,
}

// Token returns the wire value for the api_paste_expire_date parameter.
func (e ExpireDate) Token() string {
	return expireTokens[e]
}

func (e ExpireDate) String() string {
	switch e {
	case ExpireNever:
		return "never"
	case ExpireTenMinutes:
		return "10 minutes"
	case ExpireOneHour:
		return "1 hour"
	case ExpireOneDay:
		return "1 day"
	case ExpireOneWeek:
		return "1 week"
	case ExpireTwoWeeks:
		return "2 weeks"
	case ExpireOneMonth:
		return "1 month"
	}
	return "unknown"
}

// ExpireDateFromToken looks up a wire token such as "10M" or "N".
func ExpireDateFromToken(token string) (ExpireDate, bool) {
	for e := ExpireNever; e <= ExpireOneMonth; e++ {
		if expireTokens[e] == token {
			return e, true
		}
	}
	return ExpireNever, false
}

// ExpireDateFromSeconds reverse-maps a server-reported (expire - created)
// span back to a symbolic value. Spans that match no known value fall back
// to ExpireOneMonth; the upstream rounds expiries to this granularity, so
// an unknown span is taken to be the one value with no finite duration.
func ExpireDateFromSeconds(seconds int64) ExpireDate {
	for e := ExpireNever; e <= ExpireOneMonth; e++ {
		if expireSeconds[e] == seconds {
			return e
		}
	}
	return ExpireOneMonth
}
