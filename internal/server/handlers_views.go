package server

import (
	"log"
	"net/http"

	"github.com/a-h/templ"

	"game-night/internal/web"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	templ.Handler(web.Home(s.homeSummaries())).ServeHTTP(w, r)
}

func (s *Server) handleNightView(w http.ResponseWriter, r *http.Request) {
	nightID, ok := parseNightViewPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if _, exists := s.store.GetNight(nightID); !exists {
		log.Printf("night view missing night_id=%s", nightID)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	templ.Handler(web.NightView(nightID)).ServeHTTP(w, r)
}

func (s *Server) handleWatchView(w http.ResponseWriter, r *http.Request) {
	code, ok := parseWatchPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	night, exists := s.store.FindNightByShareCode(code)
	if !exists {
		http.NotFound(w, r)
		return
	}
	templ.Handler(web.WatchView(night.ID)).ServeHTTP(w, r)
}
