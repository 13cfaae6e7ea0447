package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если активность отсутствует в каталоге.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadyRegistered возвращается при повторной записи одного email на активность.
	ErrAlreadyRegistered = errors.New("participant already registered")

	// ErrNotRegistered возвращается при попытке отписать email, которого нет в списке участников.
	ErrNotRegistered = errors.New("participant not registered")
)
