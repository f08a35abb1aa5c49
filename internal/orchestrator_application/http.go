package orchestrator_application

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	calc "github.com/ERRORIK404/Keypad_Calculator/internal/calculator_application"
	"github.com/ERRORIK404/Keypad_Calculator/pkg/keymap"
	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
	structs "github.com/ERRORIK404/Keypad_Calculator/pkg/structs"
)

// Router returns the HTTP API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.httpAuth)
		r.Get("/display", s.handleDisplay)
		r.Post("/keys", s.handlePress)
		r.Get("/history", s.handleHistory)
		r.Delete("/history", s.handleClearHistory)
		r.Post("/history/{index}/replay", s.handleReplay)
	})
	return r
}

func (s *Server) httpAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, err := s.authenticate(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(withLogin(r.Context(), login)))
	})
}

func (s *Server) session(r *http.Request) *calc.Calculator {
	return s.Session(loginFromContext(r.Context()))
}

// Хендлер для получения текущего экрана
func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	c := s.session(r)
	s.writeJSON(w, http.StatusOK, newDisplay(c.Display(), nil))
}

// Хендлер для нажатия клавиши, тело {"key": "5"}
func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	c := s.session(r)

	type message struct {
		Key string `json:"key"`
	}
	var msg message
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ev, err := keymap.FromKey(msg.Key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	d, err := c.Dispatch(ev)
	if calc.IsNotice(err) {
		s.writeJSON(w, http.StatusUnprocessableEntity, newDisplay(d, err))
		return
	}
	if err != nil {
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	s.writeJSON(w, http.StatusOK, newDisplay(d, nil))
}

// Хендлер для получения истории вычислений
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	c := s.session(r)
	s.writeJSON(w, http.StatusOK, structs.NewHistoryItems(c.History()))
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	c := s.session(r)
	if err := c.ClearHistory(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	c := s.session(r)
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}
	d, err := c.Replay(index)
	if err != nil {
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	s.writeJSON(w, http.StatusOK, newDisplay(d, nil))
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, locerr.ErrHistoryEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, locerr.ErrUnknownKey), errors.Is(err, locerr.ErrUnknownOperation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
