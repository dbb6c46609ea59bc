package network

import (
	"encoding/json"
	"net/http"
	"strconv"

	"slicecam/leaderboard"
	"slicecam/room"
)

// Server wires the websocket endpoint and the small HTTP API to the room
// manager.
type Server struct {
	Rooms *room.Manager
	Board *leaderboard.Board
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/api/rooms", s.handleRooms)
	mux.HandleFunc("/api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

// GET lists rooms; POST creates one and returns its code.
func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.Rooms.ListRooms())
	case http.MethodPost:
		writeJSON(w, map[string]string{"code": s.Rooms.CreateRoom()})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// GET /api/leaderboard?n=10
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	n := 10
	if q := r.URL.Query().Get("n"); q != "" {
		if v, err := strconv.Atoi(q); err == nil && v > 0 {
			n = v
		}
	}
	entries := s.Board.Top(n)
	if entries == nil {
		entries = []leaderboard.Entry{}
	}
	writeJSON(w, entries)
}

// GET /metrics?room=ABC123
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("room")
	rm := s.Rooms.Get(code)
	if rm == nil {
		http.Error(w, "unknown room", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"room": code, "metrics": rm.Metrics.Snapshot()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
