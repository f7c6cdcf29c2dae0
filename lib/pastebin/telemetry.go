package pastebin

import (
	"pastebinkit/lib/restyutil"
	"pastebinkit/lib/telemetry"
)

var tracer = telemetry.Tracer("pastebinkit.lib.pastebin")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput makes clients constructed afterwards dump full
// request/response transcripts to out. Meant for debugging sessions.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
