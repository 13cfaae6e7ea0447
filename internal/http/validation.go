package http

import (
	"net/url"

	"activity-signup-service/internal/service"
)

// parseActivityName декодирует сегмент пути с именем активности.
// chi отдаёт сегмент в исходном (escaped) виде, а имена могут содержать
// пробелы, поэтому процентное декодирование выполняется здесь.
func parseActivityName(raw string) (string, error) {
	if raw == "" {
		return "", service.ErrBadRequest("activity name is required")
	}
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", service.ErrBadRequest("activity name is malformed")
	}
	return name, nil
}

// ValidateEmailQuery проверяет наличие query-параметра email.
// Формат адреса намеренно не проверяется.
func ValidateEmailQuery(email string) error {
	if email == "" {
		return service.ErrBadRequest("email query parameter is required")
	}
	return nil
}
