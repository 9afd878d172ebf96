package rooms

import (
	"math/rand/v2"
	"sync"

	game_constants "Armada/constants/game"
	"Armada/models"
)

// Manager owns every live room and the reverse index from player to room.
// It is the only place this state lives - no globals, so tests can spin up
// as many independent managers as they want.
type Manager struct {
	mu          sync.RWMutex
	rooms       map[string]*Room
	playerRooms map[string]string
}

func NewManager() *Manager {
	return &Manager{
		rooms:       make(map[string]*Room),
		playerRooms: make(map[string]string),
	}
}

// CreateRoom opens a new room in waiting state with the creator as its only
// player and returns the generated join code.
func (m *Manager) CreateRoom(playerID, name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := m.generateRoomCode()
	room := &Room{
		Code:    code,
		Players: []*models.Player{{ID: playerID, Name: name}},
		Status:  models.RoomStatusWaiting,
	}

	m.rooms[code] = room
	m.playerRooms[playerID] = code

	return code
}

// JoinRoom adds a player to an existing room. Once the second player is in,
// the room advances to the placing phase.
func (m *Manager) JoinRoom(playerID, name, code string) (models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[code]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if len(room.Players) >= game_constants.MaxPlayersPerRoom {
		return models.Room{}, ErrRoomFull
	}
	if room.Status != models.RoomStatusWaiting {
		return models.Room{}, ErrGameAlreadyStarted
	}

	room.Players = append(room.Players, &models.Player{ID: playerID, Name: name})
	m.playerRooms[playerID] = code

	if len(room.Players) == game_constants.MaxPlayersPerRoom {
		room.Status = models.RoomStatusPlacing
	}

	return room.snapshotLocked(), nil
}

// RemovePlayer takes a player out of a room. When the last player leaves the
// room and every piece of its state is dropped, the returned snapshot is nil.
func (m *Manager) RemovePlayer(playerID, code string) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	remaining := room.Players[:0]
	for _, p := range room.Players {
		if p.ID != playerID {
			remaining = append(remaining, p)
		}
	}
	room.Players = remaining
	delete(m.playerRooms, playerID)

	if len(room.Players) == 0 {
		delete(m.rooms, code)
		return nil, nil
	}

	snapshot := room.snapshotLocked()
	return &snapshot, nil
}

// RoomOf is the reverse lookup from player id to the code of the room the
// player currently sits in.
func (m *Manager) RoomOf(playerID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	code, ok := m.playerRooms[playerID]
	return code, ok
}

// RoomSnapshot returns the public view of a room.
func (m *Manager) RoomSnapshot(code string) (models.Room, error) {
	room := m.room(code)
	if room == nil {
		return models.Room{}, ErrRoomNotFound
	}
	return room.Snapshot(), nil
}

// Player returns the public view of a player, found through the reverse index.
func (m *Manager) Player(playerID string) (models.Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	code, ok := m.playerRooms[playerID]
	if !ok {
		return models.Player{}, false
	}
	room, ok := m.rooms[code]
	if !ok {
		return models.Player{}, false
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if p := room.playerByID(playerID); p != nil {
		return *p, true
	}
	return models.Player{}, false
}

// PlayerIDs lists the ids of every player in a room, in join order.
func (m *Manager) PlayerIDs(code string) []string {
	room := m.room(code)
	if room == nil {
		return nil
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	ids := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

// Stats reports how many rooms are live and how many players sit in them.
func (m *Manager) Stats() (roomCount, playerCount int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms), len(m.playerRooms)
}

func (m *Manager) room(code string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[code]
}

func (m *Manager) generateRoomCode() string {
	for {
		code := make([]byte, game_constants.RoomCodeLength)
		for i := range code {
			code[i] = game_constants.RoomCodeAlphabet[rand.IntN(len(game_constants.RoomCodeAlphabet))]
		}
		if _, taken := m.rooms[string(code)]; !taken {
			return string(code)
		}
	}
}
