package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port/usecases_port"
)

// PostHandler обслуживает CRUD публикаций и календарь доступности.
type PostHandler struct {
	listUC         usecases_port.ListPostsUseCasePort
	createUC       usecases_port.CreatePostUseCasePort
	updateUC       usecases_port.UpdatePostUseCasePort
	deleteUC       usecases_port.DeletePostUseCasePort
	availabilityUC usecases_port.PostAvailabilityUseCasePort
}

func NewPostHandler(
	listUC usecases_port.ListPostsUseCasePort,
	createUC usecases_port.CreatePostUseCasePort,
	updateUC usecases_port.UpdatePostUseCasePort,
	deleteUC usecases_port.DeletePostUseCasePort,
	availabilityUC usecases_port.PostAvailabilityUseCasePort,
) *PostHandler {
	return &PostHandler{
		listUC:         listUC,
		createUC:       createUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		availabilityUC: availabilityUC,
	}
}

// ListPosts обрабатывает GET /api/v1/posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPosts"})

	brokerEmail, ok := brokerEmailFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Broker email missing in context")
		return
	}

	posts, err := h.listUC.Execute(r.Context(), brokerEmail)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, posts)
}

// CreatePost обрабатывает POST /api/v1/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePost"})

	brokerEmail, ok := brokerEmailFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Broker email missing in context")
		return
	}

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn("Failed to decode post request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.PropertyID == nil || *payload.PropertyID == "" {
		WriteJSONError(w, http.StatusBadRequest, "property_id is required")
		return
	}
	if payload.Date == nil {
		WriteJSONError(w, http.StatusBadRequest, "date is required")
		return
	}
	date, err := domain.ParseCivilDate(*payload.Date)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}
	if payload.Slot == nil || !domain.TimeSlot(*payload.Slot).Valid() {
		WriteJSONError(w, http.StatusBadRequest, "slot must be one of morning, afternoon, evening, new_listing")
		return
	}

	post := domain.Post{
		PropertyID:  *payload.PropertyID,
		Date:        date,
		Slot:        domain.TimeSlot(*payload.Slot),
		BrokerEmail: brokerEmail,
	}
	if payload.PropertyTitle != nil {
		post.PropertyTitle = *payload.PropertyTitle
	}

	created, err := h.createUC.Execute(r.Context(), post)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Post created", port.Fields{"post_id": created.ID})
	RespondWithJSON(w, http.StatusCreated, created)
}

// UpdatePost обрабатывает PATCH /api/v1/posts/{postID}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdatePost"})

	brokerEmail, ok := brokerEmailFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Broker email missing in context")
		return
	}

	postID := chi.URLParam(r, "postID")
	if postID == "" {
		WriteJSONError(w, http.StatusBadRequest, "postID is required")
		return
	}

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn("Failed to decode post request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := domain.PostPatch{
		PropertyID:    payload.PropertyID,
		PropertyTitle: payload.PropertyTitle,
	}
	if payload.Date != nil {
		date, err := domain.ParseCivilDate(*payload.Date)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
			return
		}
		patch.Date = &date
	}
	if payload.Slot != nil {
		slot := domain.TimeSlot(*payload.Slot)
		if !slot.Valid() {
			WriteJSONError(w, http.StatusBadRequest, "slot must be one of morning, afternoon, evening, new_listing")
			return
		}
		patch.Slot = &slot
	}

	updated, err := h.updateUC.Execute(r.Context(), postID, brokerEmail, patch)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, updated)
}

// DeletePost обрабатывает DELETE /api/v1/posts/{postID}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeletePost"})

	brokerEmail, ok := brokerEmailFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Broker email missing in context")
		return
	}

	postID := chi.URLParam(r, "postID")
	if postID == "" {
		WriteJSONError(w, http.StatusBadRequest, "postID is required")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), postID, brokerEmail); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	logger.Info("Post deleted", port.Fields{"post_id": postID})
	w.WriteHeader(http.StatusNoContent)
}

// GetAvailability обрабатывает GET /api/v1/posts/availability
func (h *PostHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetAvailability"})

	brokerEmail, ok := brokerEmailFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Broker email missing in context")
		return
	}

	days, err := h.availabilityUC.Execute(r.Context(), brokerEmail)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, days)
}
