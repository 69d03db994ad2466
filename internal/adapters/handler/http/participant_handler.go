package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/eventojovem/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

type ParticipantHandler struct {
	service ports.ParticipantService
}

func NewParticipantHandler(service ports.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		service: service,
	}
}

func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	participants, err := h.service.List(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, participants)
}

func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	participant, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, participant)
}

type participantRequest struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	CPF       string `json:"cpf"`
	District  string `json:"district"`
	Church    string `json:"church"`
}

func (h *ParticipantHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	var req participantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		http.Error(w, "invalid birth date", http.StatusBadRequest)
		return
	}

	participant, err := h.service.Create(r.Context(), caller, ports.CreateParticipantInput{
		FullName:  req.FullName,
		BirthDate: birthDate,
		CPF:       req.CPF,
		District:  req.District,
		Church:    req.Church,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, participant)
}

func (h *ParticipantHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req participantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		http.Error(w, "invalid birth date", http.StatusBadRequest)
		return
	}

	participant, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), ports.UpdateParticipantInput{
		FullName:  req.FullName,
		BirthDate: birthDate,
		CPF:       req.CPF,
		District:  req.District,
		Church:    req.Church,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, participant)
}

type confirmPaymentRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *ParticipantHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	var req confirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	participant, err := h.service.ConfirmPayment(r.Context(), caller, chi.URLParam(r, "id"), req.Confirm)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, participant)
}

func (h *ParticipantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "participant deleted"})
}
