package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-catalog/pkg/config"
	"video-catalog/pkg/models"
	"video-catalog/pkg/services"
	"video-catalog/pkg/variants"
)

func setupServer(t *testing.T) (*http.ServeMux, *services.Service) {
	t.Helper()
	variant, ok := variants.Lookup("streaming")
	require.True(t, ok)

	cfg := &config.Config{
		Variant:           variant,
		VideosPerCategory: 3,
		OutputFile:        "streaming_data.json",
		Seed:              9,
		SecretKey:         "key",
		Port:              "8080",
		CacheTTL:          time.Minute,
	}
	svc := services.NewService(cfg)

	mux := http.NewServeMux()
	Register(mux, svc)
	return mux, svc
}

// useRepoDirs points the handlers at the templates and player shipped with the repo
func useRepoDirs(t *testing.T) {
	t.Helper()
	views, public := ViewsDir, PublicDir
	ViewsDir, PublicDir = "../../views", "../../public"
	t.Cleanup(func() { ViewsDir, PublicDir = views, public })
}

func serve(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestFeedHandler(t *testing.T) {
	mux, svc := setupServer(t)

	rec := serve(mux, http.MethodGet, "/key/feed")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var catalog models.Catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	assert.Len(t, catalog.Playlists, 8)
	assert.Equal(t, svc.GetCatalog(), catalog)
}

func TestFeedHandler_WrongSecret(t *testing.T) {
	mux, _ := setupServer(t)
	rec := serve(mux, http.MethodGet, "/other/feed")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVideosHandler(t *testing.T) {
	mux, svc := setupServer(t)

	rec := serve(mux, http.MethodGet, "/videos.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var feed models.VideoFeed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Len(t, feed.Videos, 24)
	assert.Equal(t, svc.GetCatalog().Playlists[0].Videos[0], feed.Videos[0])
}

func TestSearchHandler(t *testing.T) {
	mux, _ := setupServer(t)

	rec := serve(mux, http.MethodGet, "/key/search?q=generic")
	require.Equal(t, http.StatusOK, rec.Code)
	var none models.VideoFeed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &none))
	assert.NotNil(t, none.Videos)
	assert.Empty(t, none.Videos)

	rec = serve(mux, http.MethodGet, "/key/search?q=%201")
	require.Equal(t, http.StatusOK, rec.Code)
	var feed models.VideoFeed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	// sequential numbering gives each playlist exactly one title ending in " 1"
	assert.Len(t, feed.Videos, 8)
	for _, v := range feed.Videos {
		assert.True(t, strings.HasSuffix(v.Title, " 1"), v.Title)
	}
}

func TestIndexHandler_Template(t *testing.T) {
	useRepoDirs(t)
	mux, svc := setupServer(t)

	rec := serve(mux, http.MethodGet, "/key/index")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Video Catalog (streaming)")
	for _, playlist := range svc.GetCatalog().Playlists {
		assert.Contains(t, body, ">"+playlist.Name+"</a>")
	}
	assert.Contains(t, body, `href="/playlist/Music%20Videos"`, "names are URL escaped in links")
	assert.Contains(t, body, "3 videos")
}

func TestPlaylistHandler_Template(t *testing.T) {
	useRepoDirs(t)
	mux, svc := setupServer(t)

	rec := serve(mux, http.MethodGet, "/playlist/Music%20Videos")
	require.Equal(t, http.StatusOK, rec.Code)

	playlist, err := svc.GetPlaylist("Music Videos")
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Music Videos</h1>")
	for _, video := range playlist.Videos {
		assert.Contains(t, body, video.Title)
		assert.Contains(t, body, video.Duration)
		assert.Contains(t, body, video.Views+" views")
		assert.Contains(t, body, video.UploadDate)
	}
}

func TestNewMux_ServesPlayer(t *testing.T) {
	useRepoDirs(t)
	variant, ok := variants.Lookup("streaming")
	require.True(t, ok)
	svc := services.NewService(&config.Config{
		Variant:           variant,
		VideosPerCategory: 1,
		SecretKey:         "key",
		CacheTTL:          time.Minute,
	})
	mux := NewMux(svc)

	rec := serve(mux, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<script src="main.js"></script>`)

	rec = serve(mux, http.MethodGet, "/main.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/videos.json")

	rec = serve(mux, http.MethodGet, "/videos.json")
	require.Equal(t, http.StatusOK, rec.Code)
	var feed models.VideoFeed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	assert.Len(t, feed.Videos, 8)
}

func TestPlaylistHandler_JSON(t *testing.T) {
	mux, _ := setupServer(t)

	rec := serve(mux, http.MethodGet, "/playlist/Music%20Videos?format=json")
	require.Equal(t, http.StatusOK, rec.Code)

	var playlist models.Playlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &playlist))
	assert.Equal(t, "Music Videos", playlist.Name)
	assert.Len(t, playlist.Videos, 3)
}

func TestPlaylistHandler_NotFound(t *testing.T) {
	mux, _ := setupServer(t)

	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodGet, "/playlist/Cooking").Code)
	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodGet, "/playlist/").Code)
}

func TestRegenerateHandler(t *testing.T) {
	mux, svc := setupServer(t)

	assert.Equal(t, http.StatusMethodNotAllowed, serve(mux, http.MethodGet, "/key/admin/regenerate").Code)

	before := svc.GetCatalog()
	rec := serve(mux, http.MethodPost, "/key/admin/regenerate")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message   string `json:"message"`
		Playlists int    `json:"playlists"`
		Videos    int    `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 8, body.Playlists)
	assert.Equal(t, 24, body.Videos)
	assert.NotEqual(t, before, svc.GetCatalog())
}

func TestUploadHandler_RequiresBucket(t *testing.T) {
	mux, _ := setupServer(t)

	assert.Equal(t, http.StatusMethodNotAllowed, serve(mux, http.MethodGet, "/key/admin/upload").Code)

	rec := serve(mux, http.MethodPost, "/key/admin/upload")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "BUCKET_NAME"))
}
