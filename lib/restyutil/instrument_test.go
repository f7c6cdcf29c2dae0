package restyutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	writes map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.writes[id] = contents
}

func TestInstrumentClientWritesTranscripts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "pong")
	}))
	t.Cleanup(srv.Close)

	out := &memoryOutput{writes: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, nil, out)

	// the default logger sits at info level; transcripts must be written
	// anyway
	_, err := client.R().Get(srv.URL + "/ping")
	require.NoError(t, err)
	_, err = client.R().Get(srv.URL + "/ping")
	require.NoError(t, err)

	require.Len(t, out.writes, 2)
	require.Contains(t, out.writes["1"], "---- REQUEST ----")
	require.Contains(t, out.writes["1"], "---- RESPONSE ----")
	require.Contains(t, out.writes["1"], "pong")
	require.Contains(t, out.writes["2"], "GET")
}

func TestInstrumentClientNilOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "pong")
	}))
	t.Cleanup(srv.Close)

	client := resty.New()
	InstrumentClient(client, nil, nil)

	_, err := client.R().Get(srv.URL)
	require.NoError(t, err)
}
