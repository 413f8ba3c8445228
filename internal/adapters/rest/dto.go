package rest

import (
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// LoginRequest — тело POST /api/v1/login
type LoginRequest struct {
	Email string `json:"email"`
}

// SessionResponse — ответ POST /login и GET /session
type SessionResponse struct {
	Authenticated bool           `json:"authenticated"`
	Broker        *domain.Broker `json:"broker,omitempty"`
}

// PropertyPayload — тело создания/редактирования объекта. Даты и числа
// приходят строками/числами как есть; для PATCH все поля опциональны.
type PropertyPayload struct {
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Street            *string  `json:"street"`
	Number            *string  `json:"number"`
	Neighborhood      *string  `json:"neighborhood"`
	City              *string  `json:"city"`
	Price             *float64 `json:"price"`
	Type              *string  `json:"type"`
	Rooms             *float64 `json:"rooms"`
	Floor             *string  `json:"floor"`
	Mode              *string  `json:"mode"`
	OffersUntil       *float64 `json:"offers_until"`
	ExclusivityDocURL *string  `json:"exclusivity_document"`
}

// toProperty собирает полноценный объект для создания; отсутствующие
// поля остаются нулевыми, обязательность проверяет use case / хранилище
func (p PropertyPayload) toProperty(brokerEmail string) domain.Property {
	prop := domain.Property{BrokerEmail: brokerEmail}
	if p.Title != nil {
		prop.Title = *p.Title
	}
	if p.Description != nil {
		prop.Description = *p.Description
	}
	if p.Street != nil {
		prop.Street = *p.Street
	}
	if p.Number != nil {
		prop.Number = *p.Number
	}
	if p.Neighborhood != nil {
		prop.Neighborhood = *p.Neighborhood
	}
	if p.City != nil {
		prop.City = *p.City
	}
	if p.Price != nil {
		prop.Price = *p.Price
	}
	if p.Type != nil {
		prop.Type = domain.PropertyType(*p.Type)
	}
	if p.Rooms != nil {
		prop.Rooms = *p.Rooms
	}
	if p.Floor != nil {
		prop.Floor = *p.Floor
	}
	if p.Mode != nil {
		prop.Mode = domain.MarketingMode(*p.Mode)
	}
	if p.OffersUntil != nil {
		prop.OffersUntil = *p.OffersUntil
	}
	if p.ExclusivityDocURL != nil {
		prop.ExclusivityDocURL = *p.ExclusivityDocURL
	}
	return prop
}

// toPatch транслирует только присланные поля
func (p PropertyPayload) toPatch() domain.PropertyPatch {
	patch := domain.PropertyPatch{
		Title:             p.Title,
		Description:       p.Description,
		Street:            p.Street,
		Number:            p.Number,
		Neighborhood:      p.Neighborhood,
		City:              p.City,
		Price:             p.Price,
		Rooms:             p.Rooms,
		Floor:             p.Floor,
		OffersUntil:       p.OffersUntil,
		ExclusivityDocURL: p.ExclusivityDocURL,
	}
	if p.Type != nil {
		t := domain.PropertyType(*p.Type)
		patch.Type = &t
	}
	if p.Mode != nil {
		m := domain.MarketingMode(*p.Mode)
		patch.Mode = &m
	}
	return patch
}

// PostPayload — тело создания/редактирования публикации
type PostPayload struct {
	PropertyID    *string `json:"property_id"`
	PropertyTitle *string `json:"property_title"`
	Date          *string `json:"date"`
	Slot          *string `json:"slot"`
}

// ValidationErrorResponse — ответ 422 с нарушениями правил публикации
type ValidationErrorResponse struct {
	Error      string             `json:"error"`
	Violations []domain.Violation `json:"violations"`
}

// UploadResponse — ответ POST /api/v1/uploads
type UploadResponse struct {
	URL string `json:"url"`
}
