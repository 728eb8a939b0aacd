package model

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog record. The ID is assigned by the store on insert and
// never changes afterwards.
type Book struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
