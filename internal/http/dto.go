// Package http реализует HTTP-обработчики и DTO поверх сервиса каталога.
package http

// errorResponse повторяет формат ошибок исходного API: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

// messageResponse используется для подтверждений записи и отписки.
type messageResponse struct {
	Message string `json:"message"`
}
