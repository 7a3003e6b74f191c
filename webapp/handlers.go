package webapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"edna-quiz/page"
	"edna-quiz/quiz"
)

type waterPayload struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type stateResponse struct {
	Locale     quiz.Locale    `json:"locale"`
	Level      quiz.Level     `json:"level"`
	WaterTypes []waterPayload `json:"waterTypes"`
	Species    []string       `json:"species"`
	Extras     bool           `json:"extras"`
}

type rowPayload struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Sequence string `json:"sequence,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

type waterResponse struct {
	Key   string       `json:"key"`
	Title string       `json:"title"`
	Rows  []rowPayload `json:"rows"`
}

type checkRequest struct {
	Water      string   `json:"water"`
	Lang       string   `json:"lang"`
	Selections []string `json:"selections"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// handlePage renders the host page. GET shows the buttons and, with a
// water parameter, the open water type. POST additionally carries the
// row selections and the check or reset action.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	loc := s.requestLocale(r)
	level := s.requestLevel(r)

	view, err := s.host.NewView(loc, level, r.URL.Path)
	if err != nil {
		slog.Error("creating view", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	view.WireControls()

	if s.loadErr != nil {
		slog.Error("dataset unavailable", "error", s.loadErr)
		view.ShowLoadError()
		writePage(w, http.StatusOK, view)
		return
	}

	if err := view.BuildWaterButtons(s.catalog); err != nil {
		slog.Error("rendering buttons", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	water := r.FormValue("water")
	if water == "" {
		view.HideResults()
		writePage(w, http.StatusOK, view)
		return
	}

	session := quiz.NewSession(s.catalog, loc, level)
	if err := session.Open(water); err != nil {
		view.HideResults()
		writePage(w, http.StatusNotFound, view)
		return
	}

	var report *quiz.Report
	if r.Method == http.MethodPost {
		for i := 0; i < session.Len(); i++ {
			_ = session.Select(i, r.PostFormValue(fmt.Sprintf("select-%d", i)))
		}
		switch r.PostFormValue("action") {
		case page.ActionCheck:
			rep := session.Check()
			report = &rep
			slog.Debug("quiz checked", "water", water, "correct", rep.Correct, "total", rep.Total)
		case page.ActionReset:
			session.Reset()
		}
	}

	if err := view.OpenWaterType(session); err != nil {
		slog.Error("rendering water type", "water", water, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if report != nil {
		view.ApplyReport(*report)
	} else {
		view.SetStatus(session.Status())
	}
	writePage(w, http.StatusOK, view)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if !s.ready(w) {
		return
	}
	loc := s.requestLocale(r)
	resp := stateResponse{
		Locale:  loc,
		Level:   s.requestLevel(r),
		Species: s.catalog.Species(loc),
		Extras:  s.catalog.Data.HasExtras(),
	}
	for _, key := range s.catalog.WaterKeys() {
		wt, _ := s.catalog.Data.WaterType(key)
		resp.WaterTypes = append(resp.WaterTypes, waterPayload{Key: key, Title: wt.TitleFor(loc)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWater(w http.ResponseWriter, r *http.Request) {
	if !s.ready(w) {
		return
	}
	session := quiz.NewSession(s.catalog, s.requestLocale(r), s.requestLevel(r))
	key := chi.URLParam(r, "key")
	if err := session.Open(key); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	resp := waterResponse{Key: key, Title: session.Title()}
	for _, row := range session.Rows() {
		resp.Rows = append(resp.Rows, rowPayload{
			Index:    row.Index,
			Label:    row.Label(),
			Sequence: row.Display.Sequence,
			Icon:     row.Display.Icon,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if !s.ready(w) {
		return
	}
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	loc := s.requestLocale(r)
	if l, ok := quiz.ParseLocale(req.Lang); ok {
		loc = l
	}
	session := quiz.NewSession(s.catalog, loc, quiz.LevelIcons)
	if err := session.Open(req.Water); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	for i, pick := range req.Selections {
		if err := session.Select(i, pick); err != nil {
			if errors.Is(err, quiz.ErrRowOutOfRange) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, session.Check())
}

// requestLocale prefers a lang parameter from the query or the submitted
// form, then the configured locale, then the host page language and the
// request path.
func (s *Server) requestLocale(r *http.Request) quiz.Locale {
	if l, ok := quiz.ParseLocale(r.FormValue("lang")); ok {
		return l
	}
	if s.opts.Lang != "" {
		return s.opts.Lang
	}
	return s.host.Locale(r.URL.Path)
}

// requestLevel prefers a level parameter, then the configured level.
func (s *Server) requestLevel(r *http.Request) quiz.Level {
	if v := r.FormValue("level"); v != "" {
		return quiz.ParseLevel(v)
	}
	if s.opts.Level != "" {
		return s.opts.Level
	}
	return quiz.LevelIcons
}

func (s *Server) ready(w http.ResponseWriter) bool {
	if s.loadErr != nil {
		writeError(w, http.StatusServiceUnavailable, "dataset unavailable")
		return false
	}
	return true
}

func writePage(w http.ResponseWriter, code int, view *page.View) {
	html, err := view.HTML()
	if err != nil {
		slog.Error("serializing page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Error: http.StatusText(code), Message: message})
}
