package pastebin

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const fakeUserKey = "4fb54cb80f00e6a763a35ae6eed2cbc8"

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/api_login.php", r.URL.Path)
		require.Equal(t, "devkey", r.FormValue("api_dev_key"))
		require.Equal(t, "alice", r.FormValue("api_user_name"))
		require.Equal(t, "hunter2", r.FormValue("api_user_password"))
		fmt.Fprint(w, fakeUserKey)
	})

	account := client.NewAccount("alice", "hunter2")
	require.False(t, account.LoggedIn())

	err := account.Login(context.Background())
	require.NoError(t, err)
	require.True(t, account.LoggedIn())
	require.Equal(t, fakeUserKey, account.UserKey())

	// the user key is write-once, a second login is programmer misuse
	err = account.Login(context.Background())
	require.ErrorIs(t, err, ErrLoggedIn)
	require.Equal(t, fakeUserKey, account.UserKey())
}

func TestLoginRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Bad API request, invalid api_dev_key")
	})

	account := client.NewAccount("alice", "hunter2")
	err := account.Login(context.Background())

	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	require.Equal(t, "Bad API request, invalid api_dev_key", loginErr.Body)
	require.False(t, account.LoggedIn())
}

func TestLoginEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	account := client.NewAccount("alice", "hunter2")
	err := account.Login(context.Background())

	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
}

func TestLoginMissingCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made")
	})

	err := client.NewAccount("alice", "").Login(context.Background())
	require.ErrorIs(t, err, ErrMissingCredentials)

	err = client.NewAccount("", "hunter2").Login(context.Background())
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestPastes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "list", r.FormValue("api_option"))
		require.Equal(t, fakeUserKey, r.FormValue("api_user_key"))
		fmt.Fprint(w, pasteElement("k1", "mine", 7, 0, 1000))
	})

	account := client.NewSessionAccount(fakeUserKey)
	links, err := account.Pastes(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, "k1", links[0].Key)
	require.Same(t, account, links[0].Paste.Account)
}

func TestPastesLimitClamped(t *testing.T) {
	var sentLimit string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sentLimit = r.FormValue("api_results_limit")
		fmt.Fprint(w, "No pastes found.")
	})
	account := client.NewSessionAccount(fakeUserKey)

	_, err := account.Pastes(context.Background(), 5000)
	require.NoError(t, err)
	require.Equal(t, "1000", sentLimit)

	_, err = account.Pastes(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, "1", sentLimit)

	_, err = account.Pastes(context.Background(), -3)
	require.NoError(t, err)
	require.Equal(t, "1", sentLimit)
}

func TestPastesNoneFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "No pastes found.")
	})

	links, err := client.NewSessionAccount(fakeUserKey).Pastes(context.Background(), 50)
	require.NoError(t, err)
	require.Nil(t, links)
}

func TestPastesAnonymous(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made")
	})

	_, err := client.NewAccount("alice", "hunter2").Pastes(context.Background(), 50)
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "userdetails", r.FormValue("api_option"))
		require.Equal(t, fakeUserKey, r.FormValue("api_user_key"))
		fmt.Fprint(w, sampleUserXML)
	})

	details, err := client.NewSessionAccount(fakeUserKey).Details(context.Background())
	require.NoError(t, err)
	require.Equal(t, "wiz_kitty", details.Username)
	require.True(t, details.Pro())
}

func TestDetailsUnrecognizedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Bad API request, invalid api_user_key")
	})

	_, err := client.NewSessionAccount(fakeUserKey).Details(context.Background())

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDetailsAnonymous(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made")
	})

	_, err := client.NewAccount("alice", "hunter2").Details(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}
