package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"profeed/auth"
	"profeed/models"
	"profeed/monitoring"
	"profeed/repositories"
	"profeed/session"
)

// UserHandler handles account and profile endpoints.
type UserHandler struct {
	Users    repositories.UserRepository
	Sessions *session.Manager
}

func NewUserHandler(users repositories.UserRepository, sessions *session.Manager) *UserHandler {
	return &UserHandler{Users: users, Sessions: sessions}
}

// Signup creates a user from the posted credentials and starts a session.
// Any create failure, a duplicate username included, maps to a generic 500.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if requestData.Username == "" || requestData.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	hash, err := auth.HashPassword(requestData.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := models.User{
		Username: requestData.Username,
		Password: hash,
		Bio:      "",
	}
	if err := h.Users.Create(r.Context(), &user); err != nil {
		logrus.WithError(err).WithField("username", user.Username).Warn("signup failed")
		respondError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	if err := h.Sessions.Issue(w, r, user.Username); err != nil {
		respondError(w, http.StatusInternalServerError, "Error starting session")
		return
	}

	monitoring.SignupSuccess.Inc()
	respondJSON(w, http.StatusCreated, map[string]string{
		"message":  "User created",
		"username": user.Username,
	})
}

// Signin verifies credentials and starts a session.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if requestData.Username == "" || requestData.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.Users.FindByUsername(r.Context(), requestData.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		monitoring.SigninFailure.WithLabelValues("unknown_user").Inc()
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(requestData.Password, user.Password); err != nil {
		monitoring.SigninFailure.WithLabelValues("wrong_password").Inc()
		respondError(w, http.StatusBadRequest, "Incorrect password")
		return
	}

	if err := h.Sessions.Issue(w, r, user.Username); err != nil {
		respondError(w, http.StatusInternalServerError, "Error starting session")
		return
	}

	monitoring.SigninSuccess.Inc()
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged in successfully"})
}

// Signout destroys the caller's session, if any, and clears the cookie.
func (h *UserHandler) Signout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(w, r); err != nil {
		logrus.WithError(err).Error("failed to destroy session")
		respondError(w, http.StatusInternalServerError, "Error signing out")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

// UserProfile returns the authenticated caller's username and bio.
func (h *UserHandler) UserProfile(w http.ResponseWriter, r *http.Request) {
	username, ok := h.Sessions.Current(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.Users.FindByUsername(r.Context(), username)
	if errors.Is(err, repositories.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"username": user.Username,
		"bio":      user.Bio,
	})
}

// CheckSession reports whether the caller holds a valid session.
func (h *UserHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	_, ok := h.Sessions.Current(r)
	respondJSON(w, http.StatusOK, map[string]bool{"isAuthenticated": ok})
}

// UpdateBio replaces the authenticated caller's bio.
func (h *UserHandler) UpdateBio(w http.ResponseWriter, r *http.Request) {
	username, ok := h.Sessions.Current(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var requestData struct {
		Bio string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.Users.UpdateBio(r.Context(), username, requestData.Bio); err != nil {
		logrus.WithError(err).WithField("username", username).Error("bio update failed")
		respondError(w, http.StatusInternalServerError, "Error updating bio")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Bio updated"})
}
