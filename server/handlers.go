package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transport-catalogue/requests"
)

type healthResponse struct {
	Buses   int    `json:"buses"`
	Routing bool   `json:"routing"`
	Status  string `json:"status"`
	Stops   int    `json:"stops"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cat := s.transport.Catalogue()
	writeJSON(w, http.StatusOK, healthResponse{
		Buses:   cat.BusCount(),
		Routing: s.transport.Built(),
		Status:  "ok",
		Stops:   cat.StopCount(),
	})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, requests.StatRequest{Type: requests.TypeStop, Name: mux.Vars(r)["name"]})
}

func (s *Server) handleBus(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, requests.StatRequest{Type: requests.TypeBus, Name: mux.Vars(r)["name"]})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		http.Error(w, "from and to are required", http.StatusBadRequest)
		return
	}
	s.answer(w, r, requests.StatRequest{Type: requests.TypeRoute, From: from, To: to})
}

// handleMap serves the SVG document itself rather than a JSON envelope.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	resp, err := s.handler.Handle(requests.StatRequest{Type: requests.TypeMap})
	if err != nil {
		writeError(w, err)
		return
	}
	m, ok := resp.(requests.MapResponse)
	if !ok {
		writeJSON(w, http.StatusNotFound, resp)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(m.Map))
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request, req requests.StatRequest) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "id must be an integer", http.StatusBadRequest)
			return
		}
		req.ID = id
	}
	resp, err := s.handler.Handle(req)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if _, missing := resp.(requests.ErrorResponse); missing {
		status = http.StatusNotFound
	}
	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, requests.ErrNoRoutingSettings) {
		status = http.StatusServiceUnavailable
	}
	slog.Error("request failed", "err", err)
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
