package rest

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port/usecases_port"
)

// Максимальный размер multipart-запроса в памяти; остальное уходит
// во временные файлы средствами net/http.
const maxMultipartMemory = 32 << 20

// PropertyHandler обслуживает CRUD объектов недвижимости и их вложения.
type PropertyHandler struct {
	listUC        usecases_port.ListPropertiesUseCasePort
	createUC      usecases_port.CreatePropertyUseCasePort
	updateUC      usecases_port.UpdatePropertyUseCasePort
	deleteUC      usecases_port.DeletePropertyUseCasePort
	attachmentsUC usecases_port.ListAttachmentsUseCasePort
}

func NewPropertyHandler(
	listUC usecases_port.ListPropertiesUseCasePort,
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
	attachmentsUC usecases_port.ListAttachmentsUseCasePort,
) *PropertyHandler {
	return &PropertyHandler{
		listUC:        listUC,
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		attachmentsUC: attachmentsUC,
	}
}

// ListProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	brokerEmail, ok := brokerEmailFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Broker email missing in context")
		return
	}

	properties, err := h.listUC.Execute(r.Context(), brokerEmail)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, properties)
}

// CreateProperty обрабатывает POST /api/v1/properties.
// Принимает либо чистый JSON, либо multipart/form-data с JSON-частью
// "payload" и файлами "exclusivity_document" (один) и "images" (много).
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	brokerEmail, ok := brokerEmailFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Broker email missing in context")
		return
	}

	var input usecases_port.CreatePropertyInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			logger.Warn("Failed to parse multipart form", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		var payload PropertyPayload
		if err := json.Unmarshal([]byte(r.FormValue("payload")), &payload); err != nil {
			logger.Warn("Failed to decode payload form field", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, "Invalid payload form field")
			return
		}
		input.Property = payload.toProperty(brokerEmail)

		if headers := r.MultipartForm.File["exclusivity_document"]; len(headers) > 0 {
			file, err := openUpload(headers[0])
			if err != nil {
				WriteJSONError(w, http.StatusBadRequest, "Could not read exclusivity document")
				return
			}
			input.ExclusivityDoc = &file
		}
		for _, header := range r.MultipartForm.File["images"] {
			file, err := openUpload(header)
			if err != nil {
				WriteJSONError(w, http.StatusBadRequest, "Could not read image file")
				return
			}
			input.Images = append(input.Images, file)
		}
	} else {
		var payload PropertyPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.Warn("Failed to decode property request body", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		input.Property = payload.toProperty(brokerEmail)
	}

	created, err := h.createUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Property created", port.Fields{"property_id": created.ID})
	RespondWithJSON(w, http.StatusCreated, created)
}

// UpdateProperty обрабатывает PATCH /api/v1/properties/{propertyID}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	propertyID := chi.URLParam(r, "propertyID")
	if propertyID == "" {
		WriteJSONError(w, http.StatusBadRequest, "propertyID is required")
		return
	}

	var payload PropertyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn("Failed to decode property request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), propertyID, payload.toPatch())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteProperty обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	propertyID := chi.URLParam(r, "propertyID")
	if propertyID == "" {
		WriteJSONError(w, http.StatusBadRequest, "propertyID is required")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), propertyID); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Property deleted", port.Fields{"property_id": propertyID})
	w.WriteHeader(http.StatusNoContent)
}

// ListAttachments обрабатывает GET /api/v1/properties/{propertyID}/attachments
func (h *PropertyHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListAttachments"})

	propertyID := chi.URLParam(r, "propertyID")
	if propertyID == "" {
		WriteJSONError(w, http.StatusBadRequest, "propertyID is required")
		return
	}

	attachments, err := h.attachmentsUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, attachments)
}

// openUpload превращает multipart-заголовок в файл для порта загрузки
func openUpload(header *multipart.FileHeader) (port.UploadFile, error) {
	f, err := header.Open()
	if err != nil {
		return port.UploadFile{}, err
	}
	return port.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     f,
	}, nil
}
