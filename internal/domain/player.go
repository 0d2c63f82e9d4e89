package domain

import (
	"time"
)

type Player struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	NameKey   string    `json:"nameKey"`
	CreatedAt time.Time `json:"createdAt"`
}

// Side is the display identity of one head-to-head participant.
type Side struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (p Player) Side() Side {
	return Side{ID: p.ID, Name: p.Name}
}
