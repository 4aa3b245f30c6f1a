package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lei_validator/internal/logger"
	"lei_validator/pkg/lei"
	"lei_validator/pkg/leiservice"
)

// HTTPHandler handles incoming HTTP requests for the validator API.
type HTTPHandler struct {
	validatorService leiservice.Validator
	logger           logger.AppLogger
}

// NewHTTPHandler creates a new handler with the necessary service dependency.
func NewHTTPHandler(validatorService leiservice.Validator, appLogger logger.AppLogger) (*HTTPHandler, error) {
	if validatorService == nil {
		return nil, errors.New("validatorService cannot be nil for HTTPHandler")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for HTTPHandler")
	}
	return &HTTPHandler{
		validatorService: validatorService,
		logger:           appLogger,
	}, nil
}

// Register mounts all validator API routes on the given router.
func (h *HTTPHandler) Register(r chi.Router) {
	r.Post("/validate", h.HandleValidate)
	r.Post("/build", h.HandleBuild)
	r.Post("/identifiers", h.HandleRegisterIdentifier)
	r.Get("/identifiers", h.HandleListIdentifiers)
}

// HandleValidate handles requests to POST /validate
func (h *HTTPHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)
	defer closeBody(r, requestLogger)

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestLogger.Warn("Invalid request body for Validate", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), requestLogger)
		return
	}

	report, err := h.validatorService.Validate(r.Context(), req.LEI)
	if err != nil {
		requestLogger.Error("Error validating identifier", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to validate identifier", requestLogger)
		return
	}

	respondWithJSON(w, http.StatusOK, report, requestLogger)
}

// HandleBuild handles requests to POST /build
func (h *HTTPHandler) HandleBuild(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)
	defer closeBody(r, requestLogger)

	var req BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestLogger.Warn("Invalid request body for Build", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), requestLogger)
		return
	}

	code, err := h.validatorService.Build(r.Context(), req.LOUID, req.EntityID)
	if err != nil {
		if isValidationError(err) {
			requestLogger.Warn("Build validation failed", "error", err)
			respondWithError(w, http.StatusBadRequest, err.Error(), requestLogger)
		} else {
			requestLogger.Error("Error building identifier", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to build identifier", requestLogger)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, BuildResponse{LEI: code}, requestLogger)
}

// HandleRegisterIdentifier handles requests to POST /identifiers
func (h *HTTPHandler) HandleRegisterIdentifier(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)
	defer closeBody(r, requestLogger)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestLogger.Warn("Invalid request body for RegisterIdentifier", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), requestLogger)
		return
	}

	if req.LEI == "" {
		requestLogger.Warn("Empty identifier in RegisterIdentifier request")
		respondWithError(w, http.StatusBadRequest, "Identifier cannot be empty", requestLogger)
		return
	}

	requestLogger = requestLogger.With("lei", req.LEI)

	if err := h.validatorService.Register(r.Context(), req.LEI); err != nil {
		if isValidationError(err) {
			requestLogger.Warn("Register validation failed", "error", err)
			respondWithError(w, http.StatusBadRequest, err.Error(), requestLogger)
		} else {
			requestLogger.Error("Error registering identifier", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to register identifier", requestLogger)
		}
		return
	}

	requestLogger.Info("Identifier registered successfully")
	respondWithJSON(w, http.StatusOK, RegisterResponse{
		Success: true,
		Message: "Identifier registered successfully",
	}, requestLogger)
}

// HandleListIdentifiers handles requests to GET /identifiers
func (h *HTTPHandler) HandleListIdentifiers(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	identifiers, err := h.validatorService.ListRegistered(r.Context())
	if err != nil {
		requestLogger.Error("Error listing identifiers", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list identifiers", requestLogger)
		return
	}

	requestLogger.Info("Successfully listed identifiers", "count", len(identifiers))
	respondWithJSON(w, http.StatusOK, ListIdentifiersResponse{Identifiers: identifiers}, requestLogger)
}

// isValidationError reports whether err wraps one of the lei package sentinels.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		lei.ErrInvalidLength,
		lei.ErrInvalidCharacter,
		lei.ErrInvalidCheckDigitFormat,
		lei.ErrInvalidCheckDigits,
		lei.ErrInvalidPayloadLength,
		lei.ErrInvalidLOUIDLength,
		lei.ErrInvalidEntityIDLength,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// closeBody closes the request body, logging a failure instead of dropping it.
func closeBody(r *http.Request, l logger.AppLogger) {
	if err := r.Body.Close(); err != nil {
		l.Warn("Failed to close request body", "error", err)
	}
}

// respondWithError logs a warning and sends a JSON error response with the given code and message.
func respondWithError(w http.ResponseWriter, code int, message string, l logger.AppLogger) {
	l.Warn("Responding with error", "http_code", code, "message", message)
	respondWithJSON(w, code, ErrorResponse{Error: message}, l)
}

// respondWithJSON marshals the given payload into JSON and writes it to the response writer.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, l logger.AppLogger) {
	response, err := json.Marshal(payload)
	if err != nil {
		l.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if _, writeErr := w.Write(response); writeErr != nil {
		l.Error("Error writing response body", "error", writeErr)
	}
}
