package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/eventojovem/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

type UserHandler struct {
	userService ports.UserService
	authService ports.AuthService
}

func NewUserHandler(userService ports.UserService, authService ports.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

type createUserRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	CPF       string `json:"cpf"`
	District  string `json:"district"`
	Church    string `json:"church"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		http.Error(w, "invalid birth date", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Create(r.Context(), ports.CreateUserInput{
		FullName:  req.FullName,
		Email:     req.Email,
		BirthDate: birthDate,
		CPF:       req.CPF,
		District:  req.District,
		Church:    req.Church,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	users, err := h.userService.List(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

type updateUserRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	CPF       string `json:"cpf"`
	District  string `json:"district"`
	Church    string `json:"church"`
	Role      string `json:"role"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		http.Error(w, "invalid birth date", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Update(r.Context(), caller, chi.URLParam(r, "id"), ports.UpdateUserInput{
		FullName:  req.FullName,
		Email:     req.Email,
		BirthDate: birthDate,
		CPF:       req.CPF,
		District:  req.District,
		Church:    req.Church,
		Role:      req.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user context", http.StatusUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.userService.ChangePassword(r.Context(), caller, chi.URLParam(r, "id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
