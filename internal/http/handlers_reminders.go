package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dubemjesse/Coinflow/internal/core"
	"github.com/dubemjesse/Coinflow/internal/reminder"
)

type reminderRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Repeat      string `json:"repeat"`
}

func (req reminderRequest) toReminder() core.Reminder {
	return core.Reminder{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Time:        req.Time,
		Repeat:      core.RepeatRule(req.Repeat),
	}
}

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	bucket := reminder.Bucket(r.URL.Query().Get("filter"))
	if bucket == "" {
		bucket = reminder.BucketAll
	}
	items := s.reminders.List(bucket, time.Now())
	respondJSON(w, http.StatusOK, map[string]any{
		"count":     s.reminders.ActiveCount(),
		"reminders": items,
	})
}

func (s *Server) handleCreateReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	added, err := s.reminders.Add(r.Context(), req.toReminder())
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

func (s *Server) handleUpdateReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, found, err := s.reminders.Update(r.Context(), chi.URLParam(r, "id"), req.toReminder())
	if !found {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleCompleteReminder(w http.ResponseWriter, r *http.Request) {
	completed, found := s.reminders.Complete(r.Context(), chi.URLParam(r, "id"))
	if !found {
		http.NotFound(w, r)
		return
	}
	respondJSON(w, http.StatusOK, completed)
}

func (s *Server) handleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	deleted := s.reminders.Remove(r.Context(), chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
