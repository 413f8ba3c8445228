package rest

import (
	"errors"
	"net/http"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// writeUseCaseError транслирует ошибку use case в HTTP-статус.
// Порядок проверок важен: ValidationError и RemoteError — указатели,
// сентинелы сравниваются через errors.Is.
func writeUseCaseError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		RespondWithJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:      "posting rules violated",
			Violations: vErr.Violations,
		})
		return
	}

	if errors.Is(err, domain.ErrBrokerNotFound) {
		WriteJSONError(w, http.StatusNotFound, "broker not found")
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		WriteJSONError(w, http.StatusNotFound, "record not found")
		return
	}

	var rErr *domain.RemoteError
	if errors.As(err, &rErr) {
		logger.Error("Upstream service error", err, port.Fields{
			"service":     rErr.Service,
			"status_code": rErr.StatusCode,
		})
		WriteJSONError(w, http.StatusBadGateway, "upstream service error")
		return
	}

	logger.Error("Use case failed", err, nil)
	WriteJSONError(w, http.StatusInternalServerError, "internal server error")
}
