package rooms

import (
	"sync"

	"Armada/models"
	"Armada/services/battleship"
)

// Room is the authoritative state of one match. All mutating operations on a
// room go through its mutex, so events for the same room are applied one at
// a time while different rooms stay independent.
type Room struct {
	mu sync.Mutex

	Code    string
	Players []*models.Player
	Status  models.RoomStatus

	// CurrentTurn holds the id of the turn holder, empty outside playing.
	CurrentTurn string
	Winner      string

	// Boards and placed are nil until the game is started.
	Boards map[string]*battleship.Board
	placed map[string]map[int]bool
}

// Snapshot returns the public wire view of the room.
func (r *Room) Snapshot() models.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() models.Room {
	players := make([]models.Player, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, *p)
	}
	return models.Room{
		Code:    r.Code,
		Players: players,
		Status:  r.Status,
	}
}

func (r *Room) playerByID(playerID string) *models.Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (r *Room) opponentOf(playerID string) *models.Player {
	for _, p := range r.Players {
		if p.ID != playerID {
			return p
		}
	}
	return nil
}
