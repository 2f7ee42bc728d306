package server

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"game-night/internal/config"
)

type Server struct {
	store  *Store
	db     *gorm.DB
	ws     *wsHub
	homeWS *homeHub
	cfg    config.Config
	timers *timerEngine

	// eventSink mirrors every audit event to an observer. Tests use it; in
	// production it stays nil and events go only to the database.
	eventSink func(eventType string, roundID *int, payload EventPayload)
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	s := &Server{
		store:  NewStore(),
		db:     conn,
		ws:     newWSHub(),
		homeWS: newHomeHub(),
		cfg:    cfg,
	}
	s.timers = newTimerEngine(time.Second, s.tickRound)
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /nights/", s.handleNightView)
	mux.HandleFunc("GET /watch/", s.handleWatchView)
	mux.HandleFunc("POST /api/nights", s.handleCreateNight)
	mux.HandleFunc("GET /api/nights/", s.handleNightSubroutes)
	mux.HandleFunc("POST /api/nights/", s.handleNightSubroutes)
	mux.HandleFunc("DELETE /api/nights/", s.handleNightSubroutes)
	mux.HandleFunc("GET /ws/nights/", s.handleWebsocket)
	mux.HandleFunc("GET /ws/home", s.handleHomeWebsocket)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}

// EnsureDefaultNight creates the first night when nothing was restored from
// storage, so the home page always has somewhere to go.
func (s *Server) EnsureDefaultNight() {
	if len(s.store.ListNightSummaries()) > 0 {
		return
	}
	night := s.store.CreateNight(defaultRounds())
	if err := s.persistNight(night); err != nil {
		log.Printf("persist night failed night_id=%s error=%v", night.ID, err)
	}
	log.Printf("default night created night_id=%s rounds=%d", night.ID, len(night.Rounds))
}

// tickRound is the scheduled per-second countdown step for one round.
func (s *Server) tickRound(key timerKey) {
	_, expired, ok := s.timers.tick(key)
	if !ok {
		return
	}
	night, found := s.store.GetNight(key.nightID)
	if !found {
		s.timers.Drop(key)
		return
	}
	if expired {
		roundID := key.roundID
		name := ""
		if round, _, ok := night.findRound(roundID); ok {
			name = round.GameName
		}
		log.Printf("timer expired night_id=%s round_id=%d game=%q", night.ID, roundID, name)
		s.recordEvent(night, "timer_expired", &roundID, EventPayload{
			RoundID:  roundID,
			GameName: name,
		})
		s.ws.Broadcast(night.ID, expiryNotice(roundID, name))
	}
	s.broadcastNightUpdate(night)
}

// expiryNotice cues the client-side three-tone alert. Audio is entirely the
// client's concern; a silent client changes nothing here.
func expiryNotice(roundID int, gameName string) map[string]any {
	return map[string]any{
		"event":       "timer_expired",
		"round_id":    roundID,
		"game":        gameName,
		"alert_tones": 3,
	}
}

func (s *Server) celebrationNotice() map[string]any {
	return map[string]any{
		"event":     "celebration",
		"revert_ms": s.cfg.CelebrationRevertSeconds * 1000,
	}
}
