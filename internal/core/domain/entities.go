package domain

import "time"

// TimeSlot — слот публикации в течение дня
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	// SlotNewListing — специальный слот "анонс нового объекта"
	SlotNewListing TimeSlot = "new_listing"
)

// Valid проверяет, что слот входит в фиксированный набор
func (s TimeSlot) Valid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotNewListing:
		return true
	}
	return false
}

// PropertyType — категория жилого объекта
type PropertyType string

const (
	TypeApartment       PropertyType = "apartment"
	TypeGardenApartment PropertyType = "garden_apartment"
	TypePenthouse       PropertyType = "penthouse"
	TypeDuplex          PropertyType = "duplex"
	TypePrivateHouse    PropertyType = "private_house"
	TypeStudio          PropertyType = "studio"
)

// MarketingMode — режим маркетинга объекта
type MarketingMode string

const (
	ModeSale   MarketingMode = "sale"
	ModeRental MarketingMode = "rental"
)

// Broker — идентичность брокера из внешней таблицы контактов.
// Создается вне этого приложения и здесь никогда не изменяется;
// email служит ключом арендатора для всех запросов.
type Broker struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Property — объект недвижимости, принадлежащий ровно одному брокеру
type Property struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Street            string        `json:"street"`
	Number            string        `json:"number"`
	Neighborhood      string        `json:"neighborhood"`
	City              string        `json:"city"`
	Price             float64       `json:"price"`
	Type              PropertyType  `json:"type"`
	Rooms             float64       `json:"rooms"`
	Floor             string        `json:"floor"`
	Mode              MarketingMode `json:"mode"`
	OffersUntil       float64       `json:"offers_until,omitempty"`
	ExclusivityDocURL string        `json:"exclusivity_document,omitempty"`
	BrokerEmail       string        `json:"broker_email"`
	CreatedAt         time.Time     `json:"created_at"`

	// LastPostedOn — денормализованная дата последней публикации.
	// Продвигается только успешным созданием публикации, никогда
	// редактированием объекта. Движок правил ей не доверяет и
	// вычисляет cooldown по списку публикаций.
	LastPostedOn CivilDate `json:"last_posted_on,omitempty"`
}

// PropertyPatch — частичное обновление объекта; nil-поле означает "не трогать"
type PropertyPatch struct {
	Title             *string
	Description       *string
	Street            *string
	Number            *string
	Neighborhood      *string
	City              *string
	Price             *float64
	Type              *PropertyType
	Rooms             *float64
	Floor             *string
	Mode              *MarketingMode
	OffersUntil       *float64
	ExclusivityDocURL *string
	LastPostedOn      *CivilDate
}

// Post — запланированная публикация одного объекта на один календарный
// день в одном слоте. Ровно один объект на публикацию.
type Post struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	// PropertyTitle — денормализованная копия названия объекта,
	// чтобы список публикаций оставался читаемым при проблемах с объектом
	PropertyTitle string    `json:"property_title,omitempty"`
	Date          CivilDate `json:"date"`
	Slot          TimeSlot  `json:"slot"`
	BrokerEmail   string    `json:"broker_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// PostPatch — частичное обновление публикации
type PostPatch struct {
	PropertyID    *string
	PropertyTitle *string
	Date          *CivilDate
	Slot          *TimeSlot
}

// AttachmentState — явное состояние вложения вместо строки-маркера
type AttachmentState string

const (
	AttachmentPending  AttachmentState = "pending"
	AttachmentUploaded AttachmentState = "uploaded"
)

// Attachment — изображение или документ, привязанный к объекту
type Attachment struct {
	State    AttachmentState `json:"state"`
	URL      string          `json:"url,omitempty"`
	Filename string          `json:"filename,omitempty"`
}

// DayAvailability — доступность одного дня для календаря публикаций
type DayAvailability struct {
	Date     CivilDate `json:"date"`
	Disabled bool      `json:"disabled"`
	Reasons  []string  `json:"reasons,omitempty"`
}
