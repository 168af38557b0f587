package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"profeed/repositories"
	"profeed/web"
)

// ProfileHandler serves the static profile shell and the rendered
// per-user profile view.
type ProfileHandler struct {
	Users repositories.UserRepository
	tmpl  *template.Template
	shell []byte
}

func NewProfileHandler(users repositories.UserRepository) (*ProfileHandler, error) {
	tmpl, err := template.ParseFS(web.Assets, "templates/user_profile.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile template: %w", err)
	}

	shell, err := web.Assets.ReadFile("static/profile.html")
	if err != nil {
		return nil, fmt.Errorf("failed to read profile shell: %w", err)
	}

	return &ProfileHandler{Users: users, tmpl: tmpl, shell: shell}, nil
}

// Shell serves the static profile page.
func (h *ProfileHandler) Shell(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(h.shell)
}

// View renders the profile page for the requested user.
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]

	user, err := h.Users.FindByUsername(r.Context(), username)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Username string
		Bio      string
	}{Username: user.Username, Bio: user.Bio}
	if err := h.tmpl.Execute(w, data); err != nil {
		logrus.WithError(err).Error("failed to render profile view")
	}
}
