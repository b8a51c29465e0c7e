package models

import "errors"

var (
	// ErrNotFound — идентификатор не соответствует ни одной записи коллекции.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput — параметр запроса (дата, статус, тариф) не удалось разобрать.
	ErrInvalidInput = errors.New("invalid input")
)
