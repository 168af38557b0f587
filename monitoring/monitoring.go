package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	SignupSuccess = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "signup_success_total",
		Help: "Total successful signups",
	})

	SigninSuccess = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "signin_success_total",
		Help: "Total successful signins",
	})

	SigninFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signin_failure_total",
		Help: "Total failed signin attempts",
	}, []string{"reason"})

	FeedsPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feeds_posted_total",
		Help: "Total feed entries successfully posted",
	})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SignupSuccess)
	prometheus.MustRegister(SigninSuccess)
	prometheus.MustRegister(SigninFailure)
	prometheus.MustRegister(FeedsPosted)
}

// Middleware to track request timing and status code
type statusRecordingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecordingWriter{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(duration)

		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": rw.statusCode,
		}).Info("request handled")
	})
}
