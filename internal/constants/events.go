package constants

// Конфигурация обменника для событий жизненного цикла
const (
	EventsExchangeName = "postings_exchange"
	EventsExchangeType = "direct"

	RoutingKeyPostEvents     = "posts.events"
	RoutingKeyPropertyEvents = "properties.events"
)

// Типы и версии событий (ключи схем в internal/contracts)
const (
	EventPostCreated     = "PostCreatedEvent"
	EventPostDeleted     = "PostDeletedEvent"
	EventPropertyCreated = "PropertyCreatedEvent"

	EventVersionV1 = "1.0.0"
)
