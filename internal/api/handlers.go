package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/gorilla/mux"
)

type handlers struct {
	svc Services
}

type errorResponse struct {
	Error string `json:"error"`
}

type noteRequest struct {
	Note string `json:"note"`
}

type goalRequest struct {
	Minutes int `json:"minutes"`
}

type goalResponse struct {
	WeeklyGoalMinutes int `json:"weeklyGoalMinutes"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps rejections to 409 and missing entries to 404. Anything
// else is an internal failure.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrLogEntryNotFound), errors.Is(err, domain.ErrUnknownCabin):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case domain.IsRejection(err):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

func (h *handlers) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status.GetStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *handlers) startFlight(w http.ResponseWriter, r *http.Request) {
	var plan domain.FlightPlan
	if !decode(w, r, &plan) {
		return
	}
	flight, err := h.svc.Flights.Start(r.Context(), plan)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, flight)
}

func (h *handlers) pauseFlight(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Flights.Pause(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) resumeFlight(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Flights.Resume(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) landFlight(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Flights.Land(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) abortFlight(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Flights.Abort(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) updateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.svc.Flights.UpdateNote(r.Context(), req.Note); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) saveDraft(w http.ResponseWriter, r *http.Request) {
	var plan domain.FlightPlan
	if !decode(w, r, &plan) {
		return
	}
	if err := h.svc.Flights.SaveDraft(r.Context(), plan); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) listLog(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}
	entries, err := h.svc.Rewards.ListLog(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *handlers) deleteLogEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.svc.Rewards.DeleteLogEntry(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) listCabins(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Status.GetStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status.Cabins)
}

func (h *handlers) purchaseCabin(w http.ResponseWriter, r *http.Request) {
	id := domain.CabinID(mux.Vars(r)["id"])
	if err := h.svc.Rewards.PurchaseCabin(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	h.listCabins(w, r)
}

func (h *handlers) selectCabin(w http.ResponseWriter, r *http.Request) {
	id := domain.CabinID(mux.Vars(r)["id"])
	if err := h.svc.Rewards.SelectCabin(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	h.listCabins(w, r)
}

func (h *handlers) setGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decode(w, r, &req) {
		return
	}
	stored, err := h.svc.Rewards.SetWeeklyGoal(r.Context(), req.Minutes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goalResponse{WeeklyGoalMinutes: stored})
}

func (h *handlers) claimBonus(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Rewards.ClaimWeeklyBonus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) setNotes(w http.ResponseWriter, r *http.Request) {
	var req notesRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.svc.Rewards.SetNotes(r.Context(), req.Notes); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Rewards.ResetAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
