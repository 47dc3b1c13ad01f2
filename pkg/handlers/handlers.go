package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/eknkc/pug"
	log "github.com/sirupsen/logrus"

	"video-catalog/pkg/models"
	"video-catalog/pkg/services"
)

// ViewsDir is where the pug templates are loaded from
var ViewsDir = "./views"

// PublicDir holds the static browser player
var PublicDir = "./public"

// service backs every handler, set by Register
var service *services.Service

// NewMux returns a mux serving the static player and every catalog route
func NewMux(svc *services.Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(PublicDir)))
	Register(mux, svc)
	return mux
}

// Register wires all routes onto mux
func Register(mux *http.ServeMux, svc *services.Service) {
	service = svc
	cfg := svc.Config()

	mux.HandleFunc("/videos.json", VideosHandler)
	mux.HandleFunc("/playlist/", PlaylistHandler)
	mux.HandleFunc("/"+cfg.SecretKey+"/index", IndexHandler)
	mux.HandleFunc("/"+cfg.SecretKey+"/feed", FeedHandler)
	mux.HandleFunc("/"+cfg.SecretKey+"/search", SearchHandler)
	mux.HandleFunc("/"+cfg.SecretKey+"/admin/regenerate", RegenerateHandler)
	mux.HandleFunc("/"+cfg.SecretKey+"/admin/upload", UploadHandler(cfg))
}

// IndexHandler handles requests for the catalog index page
func IndexHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Generating Index")

	template, err := pug.CompileFile(ViewsDir+"/index.pug", pug.Options{})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Template error: %v", err)
		return
	}

	err = template.Execute(w, models.Index{
		Variant:   service.Variant(),
		Playlists: service.GetCatalog().Playlists,
	})
	if err != nil {
		log.Printf("Template execution error: %v", err)
	}
}

// FeedHandler handles requests for the catalog document (JSON)
func FeedHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Generating Feed")

	data, err := services.EncodeCatalog(service.GetCatalog())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Feed encoding error: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		log.Debugf("Feed write error: %v", err)
	}
}

// VideosHandler serves every video as a flat list for the browser player
func VideosHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.VideoFeed{Videos: service.GetVideos()})
}

// SearchHandler returns videos whose title contains the q parameter
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	log.Printf("Searching videos: %q", query)
	writeJSON(w, http.StatusOK, models.VideoFeed{Videos: service.SearchVideos(query)})
}

// PlaylistHandler handles requests for individual playlist pages
func PlaylistHandler(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), "/playlist/"))
	if err != nil || name == "" {
		http.NotFound(w, r)
		return
	}

	playlist, err := service.GetPlaylist(name)
	if err != nil {
		log.Println("Playlist not found: " + name)
		http.NotFound(w, r)
		return
	}
	log.Println("Generating Playlist Page: " + playlist.Name)

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, playlist)
		return
	}

	template, err := pug.CompileFile(ViewsDir+"/playlist.pug", pug.Options{})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Template error: %v", err)
		return
	}

	if err := template.Execute(w, playlist); err != nil {
		log.Printf("Template execution error: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Debugf("JSON write error: %v", err)
	}
}
