package plex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plexmcp/plexmcp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&types.Config{
		ServerURL: srv.URL,
		Token:     "test-token",
		Timeout:   5,
	})
}

func TestClient_ServerInfo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Plex-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"MediaContainer": {
			"friendlyName": "Home Theater",
			"version": "1.40.0",
			"platform": "Linux",
			"machineIdentifier": "abc-123"
		}}`))
	})

	info, err := client.ServerInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Home Theater", info.Name)
	assert.Equal(t, "1.40.0", info.Version)
	assert.Equal(t, "Linux", info.Platform)
	assert.Equal(t, "abc-123", info.MachineIdentifier)
}

func TestClient_Libraries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections", r.URL.Path)

		_, _ = w.Write([]byte(`{"MediaContainer": {"Directory": [
			{"key": "1", "title": "Movies", "type": "movie", "agent": "tv.plex.agents.movie", "language": "en"},
			{"key": "2", "title": "Music", "type": "artist"}
		]}}`))
	})

	libraries, err := client.Libraries(context.Background())
	require.NoError(t, err)
	require.Len(t, libraries, 2)

	assert.Equal(t, "1", libraries[0].Key)
	assert.Equal(t, "Movies", libraries[0].Title)
	assert.Equal(t, "movie", libraries[0].Type)
	assert.Equal(t, "Music", libraries[1].Title)
}

func TestClient_LibraryItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections/1/all", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("type"))
		assert.Equal(t, "10", r.URL.Query().Get("X-Plex-Container-Start"))
		assert.Equal(t, "5", r.URL.Query().Get("X-Plex-Container-Size"))

		_, _ = w.Write([]byte(`{"MediaContainer": {"totalSize": 250, "Metadata": [
			{"ratingKey": "100", "type": "movie", "title": "Arrival", "year": 2016, "rating": 8.2, "duration": 6960000}
		]}}`))
	})

	items, total, err := client.LibraryItems(context.Background(), "1", types.ItemsOptions{
		Type:  "movie",
		Start: 10,
		Size:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, 250, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Arrival", items[0].Title)
	assert.Equal(t, 2016, items[0].Year)
	assert.Equal(t, int64(6960000), items[0].DurationMillis)
}

func TestClient_LibraryItems_UnsupportedType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unsupported media type")
	})

	_, _, err := client.LibraryItems(context.Background(), "1", types.ItemsOptions{Type: "hologram"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported media type")
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "arrival", r.URL.Query().Get("query"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{"MediaContainer": {"Metadata": [
			{"ratingKey": "100", "type": "movie", "title": "Arrival"},
			{"ratingKey": "200", "type": "episode", "title": "The Arrival", "grandparentTitle": "Some Show", "index": 3, "parentIndex": 1}
		]}}`))
	})

	items, err := client.Search(context.Background(), "arrival", types.SearchOptions{Limit: 25})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Arrival", items[0].Title)
	assert.Equal(t, "Some Show", items[1].GrandparentTitle)
	assert.Equal(t, 3, items[1].Index)
}

func TestClient_MediaInfo_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"MediaContainer": {"Metadata": []}}`))
	})

	_, err := client.MediaInfo(context.Background(), "404")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Sessions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status/sessions", r.URL.Path)

		_, _ = w.Write([]byte(`{"MediaContainer": {"Metadata": [{
			"ratingKey": "100",
			"type": "movie",
			"title": "Arrival",
			"viewOffset": 120000,
			"User": {"title": "alex"},
			"Player": {"title": "Living Room TV", "state": "playing", "product": "Plex for Roku"}
		}]}}`))
	})

	sessions, err := client.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	assert.Equal(t, "Arrival", sessions[0].Item.Title)
	assert.Equal(t, "alex", sessions[0].User)
	assert.Equal(t, "Living Room TV", sessions[0].Player)
	assert.Equal(t, "playing", sessions[0].PlayerState)
	assert.Equal(t, int64(120000), sessions[0].ViewOffsetMS)
}

func TestClient_Playlists(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playlists", r.URL.Path)

		_, _ = w.Write([]byte(`{"MediaContainer": {"Metadata": [
			{"ratingKey": "500", "title": "Road Trip", "playlistType": "audio", "smart": false, "duration": 5400000, "leafCount": 42}
		]}}`))
	})

	playlists, err := client.Playlists(context.Background())
	require.NoError(t, err)
	require.Len(t, playlists, 1)

	assert.Equal(t, "Road Trip", playlists[0].Title)
	assert.Equal(t, "audio", playlists[0].Type)
	assert.False(t, playlists[0].Smart)
	assert.Equal(t, 42, playlists[0].ItemCount)
}

func TestClient_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ServerInfo(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Libraries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestManager_ConnectAndShutdown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"MediaContainer": {"friendlyName": "Home Theater", "version": "1.40.0"}}`))
	}))
	t.Cleanup(srv.Close)

	manager := NewManager(&types.Config{
		ServerURL: srv.URL,
		Token:     "test-token",
		Timeout:   5,
	})

	assert.False(t, manager.IsConnected())
	assert.Nil(t, manager.GetClient())

	require.NoError(t, manager.Connect(context.Background()))
	assert.True(t, manager.IsConnected())
	assert.NotNil(t, manager.GetClient())

	// Reconnecting is a no-op.
	require.NoError(t, manager.Connect(context.Background()))

	require.NoError(t, manager.Shutdown(context.Background()))
	assert.False(t, manager.IsConnected())
	assert.Nil(t, manager.GetClient())
}

func TestManager_ConnectFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	manager := NewManager(&types.Config{
		ServerURL: srv.URL,
		Token:     "bad-token",
		Timeout:   5,
	})

	err := manager.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, manager.IsConnected())
}
