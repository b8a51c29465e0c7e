package models

import "time"

// Appointment — встреча с клиентом. Отдельного идентификатора нет,
// запись определяется позицией в коллекции.
type Appointment struct {
	At     time.Time `json:"at" yaml:"at"`
	Client string    `json:"client" yaml:"client"`
}
