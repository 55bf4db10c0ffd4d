package model

import "github.com/pseudo-shadow/chess-oopc/internal/engine"

type Player struct {
	ID string
}

// ClientPlayer is the seat information sent to clients.
type ClientPlayer struct {
	ID         string       `json:"name"`
	Color      engine.Color `json:"color"`
	TimeLeftMS int64        `json:"timeLeftMs"`
}
