package rooms

import (
	"math/rand/v2"

	game_constants "Armada/constants/game"
	"Armada/models"
	"Armada/services/battleship"
)

// Placement mirrors the place-ship wire payload.
type Placement struct {
	ShipID      int
	StartX      int
	StartY      int
	Orientation battleship.Orientation
}

// AttackOutcome is what a resolved attack reports back to the gateway.
type AttackOutcome struct {
	X        int
	Y        int
	Hit      bool
	Sunk     *models.SunkShip
	GameOver bool
}

// StartGame allocates an empty board per player and picks the first turn
// holder uniformly at random. The room stays in placing until both players
// are ready, attacks are not possible yet.
func (m *Manager) StartGame(code string) error {
	room := m.room(code)
	if room == nil {
		return ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if len(room.Players) < game_constants.MaxPlayersPerRoom {
		return ErrNotEnoughPlayers
	}
	if room.Status != models.RoomStatusPlacing || room.Boards != nil {
		return ErrGameAlreadyStarted
	}

	room.Boards = make(map[string]*battleship.Board, len(room.Players))
	room.placed = make(map[string]map[int]bool, len(room.Players))
	for _, p := range room.Players {
		room.Boards[p.ID] = battleship.NewBoard()
		room.placed[p.ID] = make(map[int]bool)
	}

	room.CurrentTurn = room.Players[rand.IntN(len(room.Players))].ID

	return nil
}

// PlaceShip validates and records one ship on the acting player's own board.
// Ship sizes come from the fixed fleet table, each ship id can be placed
// once per player.
func (m *Manager) PlaceShip(playerID, code string, placement Placement) (*battleship.Ship, error) {
	room := m.room(code)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.Status != models.RoomStatusPlacing {
		return nil, ErrGameNotInProgress
	}
	if room.Boards == nil {
		return nil, ErrGameNotStarted
	}

	board, ok := room.Boards[playerID]
	if !ok {
		return nil, ErrNotInRoom
	}

	size, ok := game_constants.ShipSizes[placement.ShipID]
	if !ok {
		return nil, ErrUnknownShip
	}
	if room.placed[playerID][placement.ShipID] {
		return nil, ErrShipAlreadyPlaced
	}

	origin := battleship.Position{X: placement.StartX, Y: placement.StartY}
	ship, err := board.Place(placement.ShipID, game_constants.ShipNames[placement.ShipID], origin, size, placement.Orientation)
	if err != nil {
		return nil, err
	}

	room.placed[playerID][placement.ShipID] = true

	return ship, nil
}

// SetReady marks the player ready and reports whether every player in the
// room now is. When the second ready arrives the room advances to playing.
func (m *Manager) SetReady(playerID, code string) (bool, error) {
	room := m.room(code)
	if room == nil {
		return false, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.Boards == nil {
		return false, ErrGameNotStarted
	}

	player := room.playerByID(playerID)
	if player == nil {
		return false, ErrNotInRoom
	}
	player.Ready = true

	allReady := len(room.Players) == game_constants.MaxPlayersPerRoom
	for _, p := range room.Players {
		if !p.Ready {
			allReady = false
		}
	}

	if allReady && room.Status == models.RoomStatusPlacing {
		room.Status = models.RoomStatusPlaying
	}

	return allReady, nil
}

// Attack resolves one shot by the acting player against the opponent's
// board. The turn passes to the opponent only on a miss, a hit keeps the
// turn with the attacker. Sinking the last ship finishes the game on that
// same call.
func (m *Manager) Attack(playerID, code string, pos battleship.Position) (AttackOutcome, error) {
	room := m.room(code)
	if room == nil {
		return AttackOutcome{}, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.Status != models.RoomStatusPlaying {
		return AttackOutcome{}, ErrGameNotInProgress
	}
	if len(room.Players) < game_constants.MaxPlayersPerRoom {
		return AttackOutcome{}, ErrNoOpponent
	}
	if room.CurrentTurn != playerID {
		return AttackOutcome{}, ErrNotYourTurn
	}

	opponent := room.opponentOf(playerID)
	if opponent == nil {
		return AttackOutcome{}, ErrNoOpponent
	}
	board := room.Boards[opponent.ID]
	if board == nil {
		return AttackOutcome{}, ErrBoardsNotReady
	}

	result, err := board.Attack(pos)
	if err != nil {
		return AttackOutcome{}, err
	}

	outcome := AttackOutcome{X: pos.X, Y: pos.Y, Hit: result.Hit}
	if result.Sunk != nil {
		outcome.Sunk = &models.SunkShip{
			ID:   result.Sunk.TypeID,
			Name: result.Sunk.Name,
			Size: result.Sunk.Size,
		}
		if board.AllSunk() {
			outcome.GameOver = true
			room.Status = models.RoomStatusFinished
			room.Winner = playerID
			room.CurrentTurn = ""
		}
	}

	if !result.Hit {
		room.CurrentTurn = opponent.ID
	}

	return outcome, nil
}

// EndGame moves the room to its terminal state and clears the turn pointer.
// It is idempotent and a no-op for rooms that no longer exist.
func (m *Manager) EndGame(code string) {
	room := m.room(code)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	room.Status = models.RoomStatusFinished
	room.CurrentTurn = ""
}

// GameState projects the match for one player: their own board in full
// detail, the opponent's board with only hits and misses revealed. This is
// the only representation that ever crosses the wire.
func (m *Manager) GameState(playerID, code string) (*models.GameState, error) {
	room := m.room(code)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.Boards == nil {
		return nil, ErrGameNotStarted
	}

	own, ok := room.Boards[playerID]
	if !ok {
		return nil, ErrNotInRoom
	}
	opponent := room.opponentOf(playerID)
	if opponent == nil {
		return nil, ErrNoOpponent
	}
	enemy := room.Boards[opponent.ID]
	if enemy == nil {
		return nil, ErrBoardsNotReady
	}

	return &models.GameState{
		PlayerBoard: wireBoard(own, true),
		EnemyBoard:  wireBoard(enemy, false),
		CurrentTurn: room.CurrentTurn,
		Winner:      room.Winner,
	}, nil
}

// wireBoard flattens a board to the numeric wire encoding. With full=false
// only hits and misses survive, everything else reads as unknown.
func wireBoard(board *battleship.Board, full bool) [][]int {
	grid := make([][]int, game_constants.BoardSize)
	for y := 0; y < game_constants.BoardSize; y++ {
		grid[y] = make([]int, game_constants.BoardSize)
		for x := 0; x < game_constants.BoardSize; x++ {
			switch board.Cells[y][x].Status {
			case battleship.CellHit:
				grid[y][x] = models.WireCellHit
			case battleship.CellMiss:
				grid[y][x] = models.WireCellMiss
			case battleship.CellShip:
				if full {
					grid[y][x] = models.WireCellShip
				}
			}
		}
	}
	return grid
}
