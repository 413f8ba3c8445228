package rest

import (
	"net/http"

	"github.com/LallyDik/airtable-estate-flow/internal/adapters/fileupload"
	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port/usecases_port"
)

// UploadHandler принимает файл и проксирует его на внешний хостинг.
type UploadHandler struct {
	uploadUC usecases_port.UploadFileUseCasePort
}

func NewUploadHandler(uploadUC usecases_port.UploadFileUseCasePort) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// Upload обрабатывает POST /api/v1/uploads (multipart, поле "file")
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Upload"})

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Warn("Failed to parse multipart form", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "file form field is required")
		return
	}

	file, err := openUpload(headers[0])
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	// Отклоняем негодный файл сразу со статусом 400, не доводя до 500
	if err := fileupload.ValidateFile(file); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := h.uploadUC.Execute(r.Context(), file)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("File uploaded", port.Fields{"filename": file.Filename})
	RespondWithJSON(w, http.StatusCreated, UploadResponse{URL: url})
}
