package recordstore

import (
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// Хранилище использует человеко-читаемые имена полей, отличные от имен
// доменной модели. Соответствие задается одной статической двунаправленной
// таблицей на сущность — никаких строковых литералов по местам вызова.

type fieldMap struct {
	toStore  map[string]string
	toDomain map[string]string
}

func newFieldMap(pairs map[string]string) fieldMap {
	fm := fieldMap{
		toStore:  pairs,
		toDomain: make(map[string]string, len(pairs)),
	}
	for domainName, storeName := range pairs {
		if _, dup := fm.toDomain[storeName]; dup {
			panic("recordstore: duplicate store field name " + storeName)
		}
		fm.toDomain[storeName] = domainName
	}
	return fm
}

// store возвращает имя поля в хранилище; неизвестное доменное имя —
// ошибка программиста
func (m fieldMap) store(domainName string) string {
	storeName, ok := m.toStore[domainName]
	if !ok {
		panic("recordstore: unknown domain field " + domainName)
	}
	return storeName
}

// domainName возвращает доменное имя поля хранилища
func (m fieldMap) domainName(storeName string) (string, bool) {
	name, ok := m.toDomain[storeName]
	return name, ok
}

var propertyFields = newFieldMap(map[string]string{
	"title":                "Title",
	"description":          "Description",
	"street":               "Street",
	"number":               "House Number",
	"neighborhood":         "Neighborhood",
	"city":                 "City",
	"price":                "Price",
	"type":                 "Property Type",
	"rooms":                "Rooms",
	"floor":                "Floor",
	"mode":                 "Marketing Mode",
	"offers_until":         "Offers Until",
	"exclusivity_document": "Exclusivity Document",
	"broker":               "Broker",
	"broker_email":         "Broker Email",
	"last_posted_on":       "Last Posted On",
})

var postFields = newFieldMap(map[string]string{
	"property":       "Property",
	"property_title": "Property Title",
	"date":           "Date",
	"slot":           "Time Slot",
	"broker":         "Broker",
	"broker_email":   "Broker Email",
})

var contactFields = newFieldMap(map[string]string{
	"name":  "Name",
	"email": "Email",
})

var imageFields = newFieldMap(map[string]string{
	"property": "Property",
	"url":      "URL",
	"filename": "Filename",
})

// --- хелперы чтения мешка полей ---

func str(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func num(fields map[string]any, key string) float64 {
	if v, ok := fields[key].(float64); ok {
		return v
	}
	return 0
}

// firstLinked достает первый id из поля-ссылки (хранилище отдает массив)
func firstLinked(fields map[string]any, key string) string {
	if arr, ok := fields[key].([]any); ok && len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			return s
		}
	}
	return ""
}

func civilDate(fields map[string]any, key string) domain.CivilDate {
	s := str(fields, key)
	if s == "" {
		return domain.CivilDate{}
	}
	d, err := domain.ParseCivilDate(s)
	if err != nil {
		// кривую дату в хранилище трактуем как незаданную
		return domain.CivilDate{}
	}
	return d
}

// --- маппинг Property ---

func propertyToFields(p domain.Property) map[string]any {
	fields := map[string]any{
		propertyFields.store("title"):        p.Title,
		propertyFields.store("description"):  p.Description,
		propertyFields.store("street"):       p.Street,
		propertyFields.store("number"):       p.Number,
		propertyFields.store("neighborhood"): p.Neighborhood,
		propertyFields.store("city"):         p.City,
		propertyFields.store("price"):        p.Price,
		propertyFields.store("type"):         string(p.Type),
		propertyFields.store("rooms"):        p.Rooms,
		propertyFields.store("floor"):        p.Floor,
		propertyFields.store("mode"):         string(p.Mode),
		propertyFields.store("broker_email"): p.BrokerEmail,
	}
	if p.OffersUntil != 0 {
		fields[propertyFields.store("offers_until")] = p.OffersUntil
	}
	if p.ExclusivityDocURL != "" {
		fields[propertyFields.store("exclusivity_document")] = p.ExclusivityDocURL
	}
	if !p.LastPostedOn.IsZero() {
		fields[propertyFields.store("last_posted_on")] = p.LastPostedOn.String()
	}
	return fields
}

func propertyFromRecord(rec record) domain.Property {
	f := rec.Fields
	return domain.Property{
		ID:                rec.ID,
		Title:             str(f, propertyFields.store("title")),
		Description:       str(f, propertyFields.store("description")),
		Street:            str(f, propertyFields.store("street")),
		Number:            str(f, propertyFields.store("number")),
		Neighborhood:      str(f, propertyFields.store("neighborhood")),
		City:              str(f, propertyFields.store("city")),
		Price:             num(f, propertyFields.store("price")),
		Type:              domain.PropertyType(str(f, propertyFields.store("type"))),
		Rooms:             num(f, propertyFields.store("rooms")),
		Floor:             str(f, propertyFields.store("floor")),
		Mode:              domain.MarketingMode(str(f, propertyFields.store("mode"))),
		OffersUntil:       num(f, propertyFields.store("offers_until")),
		ExclusivityDocURL: str(f, propertyFields.store("exclusivity_document")),
		BrokerEmail:       str(f, propertyFields.store("broker_email")),
		CreatedAt:         rec.CreatedTime,
		LastPostedOn:      civilDate(f, propertyFields.store("last_posted_on")),
	}
}

func propertyPatchToFields(patch domain.PropertyPatch) map[string]any {
	fields := map[string]any{}
	if patch.Title != nil {
		fields[propertyFields.store("title")] = *patch.Title
	}
	if patch.Description != nil {
		fields[propertyFields.store("description")] = *patch.Description
	}
	if patch.Street != nil {
		fields[propertyFields.store("street")] = *patch.Street
	}
	if patch.Number != nil {
		fields[propertyFields.store("number")] = *patch.Number
	}
	if patch.Neighborhood != nil {
		fields[propertyFields.store("neighborhood")] = *patch.Neighborhood
	}
	if patch.City != nil {
		fields[propertyFields.store("city")] = *patch.City
	}
	if patch.Price != nil {
		fields[propertyFields.store("price")] = *patch.Price
	}
	if patch.Type != nil {
		fields[propertyFields.store("type")] = string(*patch.Type)
	}
	if patch.Rooms != nil {
		fields[propertyFields.store("rooms")] = *patch.Rooms
	}
	if patch.Floor != nil {
		fields[propertyFields.store("floor")] = *patch.Floor
	}
	if patch.Mode != nil {
		fields[propertyFields.store("mode")] = string(*patch.Mode)
	}
	if patch.OffersUntil != nil {
		fields[propertyFields.store("offers_until")] = *patch.OffersUntil
	}
	if patch.ExclusivityDocURL != nil {
		fields[propertyFields.store("exclusivity_document")] = *patch.ExclusivityDocURL
	}
	if patch.LastPostedOn != nil {
		fields[propertyFields.store("last_posted_on")] = patch.LastPostedOn.String()
	}
	return fields
}

// --- маппинг Post ---

func postToFields(p domain.Post) map[string]any {
	fields := map[string]any{
		postFields.store("property"):     []string{p.PropertyID},
		postFields.store("date"):         p.Date.String(),
		postFields.store("slot"):         string(p.Slot),
		postFields.store("broker_email"): p.BrokerEmail,
	}
	if p.PropertyTitle != "" {
		fields[postFields.store("property_title")] = p.PropertyTitle
	}
	return fields
}

func postFromRecord(rec record) domain.Post {
	f := rec.Fields
	return domain.Post{
		ID:            rec.ID,
		PropertyID:    firstLinked(f, postFields.store("property")),
		PropertyTitle: str(f, postFields.store("property_title")),
		Date:          civilDate(f, postFields.store("date")),
		Slot:          domain.TimeSlot(str(f, postFields.store("slot"))),
		BrokerEmail:   str(f, postFields.store("broker_email")),
		CreatedAt:     rec.CreatedTime,
	}
}

func postPatchToFields(patch domain.PostPatch) map[string]any {
	fields := map[string]any{}
	if patch.PropertyID != nil {
		fields[postFields.store("property")] = []string{*patch.PropertyID}
	}
	if patch.PropertyTitle != nil {
		fields[postFields.store("property_title")] = *patch.PropertyTitle
	}
	if patch.Date != nil {
		fields[postFields.store("date")] = patch.Date.String()
	}
	if patch.Slot != nil {
		fields[postFields.store("slot")] = string(*patch.Slot)
	}
	return fields
}

// --- маппинг Broker (контакт) ---

func brokerFromRecord(rec record) domain.Broker {
	f := rec.Fields
	return domain.Broker{
		ID:    rec.ID,
		Name:  str(f, contactFields.store("name")),
		Email: str(f, contactFields.store("email")),
	}
}
