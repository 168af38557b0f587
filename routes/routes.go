package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"profeed/handlers"
	"profeed/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(userHandler *handlers.UserHandler, feedHandler *handlers.FeedHandler, profileHandler *handlers.ProfileHandler, systemHandler *handlers.SystemHandler) http.Handler {
	router := mux.NewRouter()

	// Profile pages
	router.HandleFunc("/profile", profileHandler.Shell).Methods("GET")
	router.HandleFunc("/profile/{username}", profileHandler.View).Methods("GET")

	// Account routes
	router.HandleFunc("/signup", userHandler.Signup).Methods("POST")
	router.HandleFunc("/signin", userHandler.Signin).Methods("POST")
	router.HandleFunc("/signout", userHandler.Signout).Methods("POST")
	router.HandleFunc("/updateBio", userHandler.UpdateBio).Methods("POST")
	router.HandleFunc("/api/userProfile", userHandler.UserProfile).Methods("GET")
	router.HandleFunc("/api/checkSession", userHandler.CheckSession).Methods("GET")

	// Feed routes
	router.HandleFunc("/api/feeds", feedHandler.GetFeeds).Methods("GET")
	router.HandleFunc("/api/feeds", feedHandler.PostFeed).Methods("POST")

	// System routes
	router.HandleFunc("/health", systemHandler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(router)
}
