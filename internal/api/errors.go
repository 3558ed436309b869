package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MJE43/roulette-sim/internal/config"
	"github.com/MJE43/roulette-sim/internal/player"
	"github.com/MJE43/roulette-sim/internal/roulette"
	"github.com/MJE43/roulette-sim/internal/stats"
)

// classify maps a simulation error to a status code and error type.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, stats.ErrInsufficientData):
		return http.StatusBadRequest, ErrTypeValidation
	case errors.Is(err, player.ErrUnknownStrategy):
		return http.StatusBadRequest, ErrTypeUnknownStrategy
	case errors.Is(err, player.ErrScript), errors.Is(err, player.ErrUnknownOutcome):
		return http.StatusUnprocessableEntity, ErrTypeScript
	case errors.Is(err, roulette.ErrInvalidBet):
		return http.StatusUnprocessableEntity, ErrTypeInvalidBet
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, ErrTypeTimeout
	default:
		return http.StatusInternalServerError, ErrTypeInternal
	}
}

// handleError classifies err, logs it and writes the error response.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, errType := classify(err)
	s.writeError(w, r, status, errType, err.Error(), nil)
}

// writeError logs and writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string, ctx map[string]any) {
	requestID := middleware.GetReqID(r.Context())

	fields := []zap.Field{
		zap.String("type", errType),
		zap.Int("status", status),
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("message", message),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
	} else {
		s.logger.Warn("request rejected", fields...)
	}

	w.Header().Set("X-Error-Type", errType)
	s.writeJSON(w, status, EngineError{
		Type:      errType,
		Message:   message,
		Context:   ctx,
		RequestID: requestID,
	})
}

// writeJSON writes a JSON response with proper headers
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Engine-Version", EngineVersion)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

// RecoveryHandler turns a handler panic into a structured 500.
func (s *Server) RecoveryHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "Internal server error",
					map[string]any{"panic": fmt.Sprintf("%v", rvr)})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
