package models

import (
	"github.com/uptrace/bun"
)

// Event : Event Model
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID          int64  `json:"id" bun:",pk,autoincrement"`
	Name        string `json:"name" bun:",notnull"`
	Date        string `json:"date" bun:",notnull"`
	Location    string `json:"location" bun:",notnull"`
	Description string `json:"description" bun:",notnull"`
}

// SeedEvents are inserted when the events table is found empty at startup.
func SeedEvents() []Event {
	return []Event{
		{
			Name:        "Semana de Tecnologia UEPB",
			Date:        "2024-11-20",
			Location:    "Auditório Central",
			Description: "Evento sobre inovação e tecnologia",
		},
		{
			Name:        "Workshop de Programação",
			Date:        "2024-11-25",
			Location:    "Laboratório de Informática",
			Description: "Aprenda a programar do zero",
		},
	}
}
