package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"profeed/dto"
	"profeed/models"
	"profeed/monitoring"
	"profeed/repositories"
	"profeed/session"
)

// FeedHandler handles the global feed endpoints.
type FeedHandler struct {
	Feeds    repositories.FeedRepository
	Users    repositories.UserRepository
	Sessions *session.Manager
}

func NewFeedHandler(feeds repositories.FeedRepository, users repositories.UserRepository, sessions *session.Manager) *FeedHandler {
	return &FeedHandler{Feeds: feeds, Users: users, Sessions: sessions}
}

// GetFeeds returns every feed entry with its author, oldest first.
func (h *FeedHandler) GetFeeds(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Feeds.ListAll(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list feeds")
		respondError(w, http.StatusInternalServerError, "Error retrieving feeds")
		return
	}

	response := make([]dto.FeedDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.FromFeed(entry)
	}
	respondJSON(w, http.StatusOK, response)
}

// PostFeed appends an entry for the authenticated caller. The author is
// re-checked against the user table so a stale session yields a clean 404
// rather than a foreign-key error.
func (h *FeedHandler) PostFeed(w http.ResponseWriter, r *http.Request) {
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

	var requestData struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if requestData.Message == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	entry := models.Feed{
		Username: user.Username,
		Message:  requestData.Message,
		Datetime: time.Now().UTC(),
	}
	if err := h.Feeds.Create(r.Context(), &entry); err != nil {
		logrus.WithError(err).WithField("username", user.Username).Error("failed to post feed entry")
		respondError(w, http.StatusInternalServerError, "Error posting feed")
		return
	}

	monitoring.FeedsPosted.Inc()
	respondJSON(w, http.StatusCreated, dto.FromFeed(entry))
}
