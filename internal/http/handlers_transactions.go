package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dubemjesse/Coinflow/internal/core"
	"github.com/dubemjesse/Coinflow/internal/store"
)

type transactionRequest struct {
	Title    string      `json:"title"`
	Amount   core.Amount `json:"amount"`
	Category string      `json:"category"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
}

type transactionPatch struct {
	Title    *string      `json:"title"`
	Amount   *core.Amount `json:"amount"`
	Category *string      `json:"category"`
	Date     *string      `json:"date"`
	Time     *string      `json:"time"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"transactions": s.store.Transactions()})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	tx, err := s.store.AddTransaction(r.Context(), store.CreateParams{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: core.Category(req.Category),
		Date:     req.Date,
		Time:     req.Time,
	})
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var patch transactionPatch
	if err := decodeBody(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	params := store.UpdateParams{
		Title:  patch.Title,
		Amount: patch.Amount,
		Date:   patch.Date,
		Time:   patch.Time,
	}
	if patch.Category != nil {
		cat := core.Category(*patch.Category)
		params.Category = &cat
	}

	tx, found, err := s.store.UpdateTransaction(r.Context(), id, params)
	if !found {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

// handleDeleteTransaction answers 200 whether or not the id existed: a
// missing record is already the requested state.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	deleted := s.store.RemoveTransaction(r.Context(), id)
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
