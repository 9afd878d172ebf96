package socketio_types

import (
	"errors"
	"strings"

	"Armada/models"
	"Armada/services/battleship"
)

// Payload validation errors, surfaced verbatim to the sender.
var (
	ErrNameRequired     = errors.New("a player name is required")
	ErrRoomCodeRequired = errors.New("a room code is required")
	ErrBadOrientation   = errors.New("orientation must be horizontal or vertical")
)

// Inbound event payloads. Every event carries exactly one JSON object which
// is decoded and validated here before it can reach the game state.

type CreateRoomPayload struct {
	Name string `json:"name"`
}

func (p *CreateRoomPayload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrNameRequired
	}
	return nil
}

type JoinRoomPayload struct {
	Name     string `json:"name"`
	RoomCode string `json:"roomCode"`
}

func (p *JoinRoomPayload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.RoomCode = strings.ToUpper(strings.TrimSpace(p.RoomCode))
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.RoomCode == "" {
		return ErrRoomCodeRequired
	}
	return nil
}

type StartGamePayload struct {
	RoomCode string `json:"roomCode"`
}

func (p *StartGamePayload) Validate() error {
	p.RoomCode = strings.ToUpper(strings.TrimSpace(p.RoomCode))
	if p.RoomCode == "" {
		return ErrRoomCodeRequired
	}
	return nil
}

type PlaceShipPayload struct {
	ShipID      int    `json:"shipId"`
	StartX      int    `json:"startX"`
	StartY      int    `json:"startY"`
	Orientation string `json:"orientation"`
}

func (p *PlaceShipPayload) Validate() error {
	switch battleship.Orientation(p.Orientation) {
	case battleship.Horizontal, battleship.Vertical:
		return nil
	}
	return ErrBadOrientation
}

type AttackPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Outbound event payloads.

type RoomCreatedPayload struct {
	RoomCode string `json:"roomCode"`
}

type GameOverPayload struct {
	Winner models.Player `json:"winner"`
}
