package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/itallokavin/gestao-aeronaves/internal/constants"
	"github.com/itallokavin/gestao-aeronaves/internal/logging"
	"github.com/itallokavin/gestao-aeronaves/internal/models/dtos/responses"
)

// RespondJSON writes data as the bare JSON body.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, data)
}

func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondAppError translates err into the standard error body. Errors that are
// not an *AppError are treated as unexpected: logged, and answered with a
// generic 500.
func RespondAppError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = &AppError{Kind: KindUnexpected, Message: constants.MsgInternalError, Err: err}
	}

	status, title := classify(appErr.Kind)
	if appErr.Kind == KindUnexpected {
		logging.ForRequest(r).
			Errorw("Unexpected error", "error", err)
	}

	RespondError(w, status, title, appErr.Message, appErr.Details)
}

// RespondError writes an error body with an explicit status and title.
func RespondError(w http.ResponseWriter, statusCode int, title, message string, details []string) {
	if details == nil {
		details = []string{}
	}

	writeJSON(w, statusCode, responses.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    statusCode,
		Error:     title,
		Message:   message,
		Details:   details,
	})
}

func classify(kind ErrorKind) (int, string) {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest, constants.ErrTitleValidation
	case KindMalformed:
		return http.StatusBadRequest, constants.ErrTitleMalformed
	case KindNotFound:
		return http.StatusNotFound, constants.ErrTitleNotFound
	case KindInvalidArgument:
		return http.StatusBadRequest, constants.ErrTitleInvalidArgument
	default:
		return http.StatusInternalServerError, constants.ErrTitleInternal
	}
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error("JSON encode failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(append(data, '\n'))
}
