package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"hrmsproject/models"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()
}

// DecodeAndValidate decodes the request body into a structure and validates it
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
		return err
	}
	if err := Validate.Struct(v); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)

		for _, e := range validationErrors {
			errorMessages[e.Field()] = e.Tag()
		}
		HandleValidationResponse(w, http.StatusBadRequest, errorMessages)
		return err
	}
	return nil
}

// HandleMessageResponse writes a message envelope with the given status code
func HandleMessageResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewMessageResponse(statusCode < http.StatusBadRequest, message)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// HandleValidationResponse handles validation errors response for struct validation
func HandleValidationResponse(w http.ResponseWriter, statusCode int, validationErrors interface{}) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewValidationResponse(validationErrors)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// HandleDataResponse handles success responses with data
func HandleDataResponse(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewDataResponse(data)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// HandleListResponse handles success responses carrying a counted list
func HandleListResponse(w http.ResponseWriter, count int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewListResponse(count, data)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// HandleMarkResponse writes the mark-attendance envelope with the changed flag
func HandleMarkResponse(w http.ResponseWriter, data interface{}, changed bool) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewMarkResponse(data, changed)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// HandleError translates a service error into the matching HTTP status.
// Unclassified errors fall through as internal server errors.
func HandleError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case models.ErrInvalidInput:
			statusCode = http.StatusBadRequest
		case models.ErrNotFound:
			statusCode = http.StatusNotFound
		case models.ErrConflict:
			statusCode = http.StatusConflict
		case models.ErrStorage:
			statusCode = http.StatusInternalServerError
		}
	}

	HandleMessageResponse(w, err.Error(), statusCode)
}
