package constants

// Обменник и ключи маршрутизации событий сервиса.
const (
	EventsExchangeName = "settlements.events"
	EventsExchangeType = "topic"

	LeadCreatedRoutingKey = "lead.created"
)
