package logger

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger emits structured JSON logs tagged with the service name and hostname.
type Logger struct {
	service string
	log     zerolog.Logger
}

// New creates a logger for the given service.
func New(service string) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	hostname, _ := os.Hostname()

	log := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Str("hostname", hostname).
		Logger()

	return &Logger{
		service: service,
		log:     log,
	}
}

func (l *Logger) Info(action, requestID, message string) {
	l.log.Info().
		Str("action", action).
		Str("request_id", requestID).
		Msg(message)
}

func (l *Logger) Debug(action, requestID, message string) {
	l.log.Debug().
		Str("action", action).
		Str("request_id", requestID).
		Msg(message)
}

func (l *Logger) Error(action, requestID, message string, err error) {
	l.log.Error().
		Str("action", action).
		Str("request_id", requestID).
		Err(err).
		Msg(message)
}

// Request logs a completed HTTP request.
func (l *Logger) Request(requestID, method, path string, status int, duration time.Duration) {
	l.log.Debug().
		Str("action", "request_completed").
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Int64("duration_ms", duration.Milliseconds()).
		Msgf("%s %s - %d", method, path, status)
}

// GenerateRequestID returns a random id used to correlate log lines per request.
func GenerateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "req_unknown"
	}
	return "req_" + hex.EncodeToString(b)
}
