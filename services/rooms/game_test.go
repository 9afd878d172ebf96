package rooms

import (
	"testing"

	game_constants "Armada/constants/game"
	"Armada/models"
	"Armada/services/battleship"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Standard test fleet: every ship left-aligned on its own even row, so no
// two ships ever touch.
var testFleet = []Placement{
	{ShipID: game_constants.ShipCarrier, StartX: 0, StartY: 0, Orientation: battleship.Horizontal},
	{ShipID: game_constants.ShipBattleship, StartX: 0, StartY: 2, Orientation: battleship.Horizontal},
	{ShipID: game_constants.ShipCruiser, StartX: 0, StartY: 4, Orientation: battleship.Horizontal},
	{ShipID: game_constants.ShipSubmarine, StartX: 0, StartY: 6, Orientation: battleship.Horizontal},
	{ShipID: game_constants.ShipDestroyer, StartX: 0, StartY: 8, Orientation: battleship.Horizontal},
}

// fleetCells returns every cell the standard test fleet occupies.
func fleetCells() []battleship.Position {
	var cells []battleship.Position
	for _, p := range testFleet {
		size := game_constants.ShipSizes[p.ShipID]
		cells = append(cells, battleship.ShipSpan(battleship.Position{X: p.StartX, Y: p.StartY}, size, p.Orientation)...)
	}
	return cells
}

func newPlacingGame(t *testing.T) (*Manager, string) {
	t.Helper()
	m := NewManager()
	code := m.CreateRoom("p1", "Ana")
	_, err := m.JoinRoom("p2", "Beto", code)
	require.NoError(t, err)
	require.NoError(t, m.StartGame(code))
	return m, code
}

func newPlayingGame(t *testing.T) (*Manager, string) {
	t.Helper()
	m, code := newPlacingGame(t)
	for _, playerID := range []string{"p1", "p2"} {
		for _, placement := range testFleet {
			_, err := m.PlaceShip(playerID, code, placement)
			require.NoError(t, err)
		}
	}
	allReady, err := m.SetReady("p1", code)
	require.NoError(t, err)
	require.False(t, allReady)
	allReady, err = m.SetReady("p2", code)
	require.NoError(t, err)
	require.True(t, allReady)
	return m, code
}

func turnHolder(t *testing.T, m *Manager, code string) string {
	t.Helper()
	state, err := m.GameState("p1", code)
	require.NoError(t, err)
	return state.CurrentTurn
}

func opponentOf(playerID string) string {
	if playerID == "p1" {
		return "p2"
	}
	return "p1"
}

func TestStartGameRequiresTwoPlayers(t *testing.T) {
	m := NewManager()
	code := m.CreateRoom("p1", "Ana")
	assert.ErrorIs(t, m.StartGame(code), ErrNotEnoughPlayers)
	assert.ErrorIs(t, m.StartGame("NOSUCH"), ErrRoomNotFound)
}

func TestStartGameOnlyOnce(t *testing.T) {
	m, code := newPlacingGame(t)
	assert.ErrorIs(t, m.StartGame(code), ErrGameAlreadyStarted)
}

func TestStartGameAssignsFirstTurn(t *testing.T) {
	m, code := newPlacingGame(t)
	holder := turnHolder(t, m, code)
	assert.Contains(t, []string{"p1", "p2"}, holder)

	// Still placing: both players see the same turn holder already
	state, err := m.GameState("p2", code)
	require.NoError(t, err)
	assert.Equal(t, holder, state.CurrentTurn)
}

func TestPlaceShipBeforeStart(t *testing.T) {
	m := NewManager()
	code := m.CreateRoom("p1", "Ana")
	_, err := m.JoinRoom("p2", "Beto", code)
	require.NoError(t, err)

	_, err = m.PlaceShip("p1", code, testFleet[0])
	assert.ErrorIs(t, err, ErrGameNotStarted)
}

func TestPlaceShipValidations(t *testing.T) {
	m, code := newPlacingGame(t)

	_, err := m.PlaceShip("p1", code, Placement{ShipID: 9, StartX: 0, StartY: 0, Orientation: battleship.Horizontal})
	assert.ErrorIs(t, err, ErrUnknownShip)

	_, err = m.PlaceShip("ghost", code, testFleet[0])
	assert.ErrorIs(t, err, ErrNotInRoom)

	_, err = m.PlaceShip("p1", code, testFleet[0])
	require.NoError(t, err)

	// Same ship id again, even somewhere else entirely
	_, err = m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipCarrier, StartX: 0, StartY: 5, Orientation: battleship.Horizontal})
	assert.ErrorIs(t, err, ErrShipAlreadyPlaced)

	// Carrier occupies (0,0)-(4,0): same origin collides, next row touches
	_, err = m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipBattleship, StartX: 0, StartY: 0, Orientation: battleship.Horizontal})
	assert.ErrorIs(t, err, battleship.ErrCellOccupied)
	_, err = m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipBattleship, StartX: 0, StartY: 1, Orientation: battleship.Horizontal})
	assert.ErrorIs(t, err, battleship.ErrShipAdjacent)
	_, err = m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipBattleship, StartX: 2, StartY: 1, Orientation: battleship.Horizontal})
	assert.ErrorIs(t, err, battleship.ErrShipAdjacent)

	_, err = m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipBattleship, StartX: 7, StartY: 0, Orientation: battleship.Horizontal})
	assert.ErrorIs(t, err, battleship.ErrOutOfBounds)

	// Two rows of clearance works
	_, err = m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipBattleship, StartX: 0, StartY: 2, Orientation: battleship.Horizontal})
	assert.NoError(t, err)
}

func TestCruiserAndSubmarineShareSize(t *testing.T) {
	m, code := newPlacingGame(t)

	cruiser, err := m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipCruiser, StartX: 0, StartY: 0, Orientation: battleship.Horizontal})
	require.NoError(t, err)
	submarine, err := m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipSubmarine, StartX: 0, StartY: 2, Orientation: battleship.Horizontal})
	require.NoError(t, err)

	assert.Equal(t, 3, cruiser.Size)
	assert.Equal(t, 3, submarine.Size)
	assert.NotEqual(t, cruiser.TypeID, submarine.TypeID)
}

func TestPlacementFrozenOncePlaying(t *testing.T) {
	m, code := newPlayingGame(t)
	_, err := m.PlaceShip("p1", code, testFleet[0])
	assert.ErrorIs(t, err, ErrGameNotInProgress)
}

func TestSetReadyBeforeStart(t *testing.T) {
	m := NewManager()
	code := m.CreateRoom("p1", "Ana")
	_, err := m.JoinRoom("p2", "Beto", code)
	require.NoError(t, err)

	_, err = m.SetReady("p1", code)
	assert.ErrorIs(t, err, ErrGameNotStarted)
}

func TestSetReadyTransitionsToPlaying(t *testing.T) {
	m, code := newPlacingGame(t)

	allReady, err := m.SetReady("p1", code)
	require.NoError(t, err)
	assert.False(t, allReady)

	snapshot, err := m.RoomSnapshot(code)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusPlacing, snapshot.Status)

	allReady, err = m.SetReady("p2", code)
	require.NoError(t, err)
	assert.True(t, allReady)

	snapshot, err = m.RoomSnapshot(code)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusPlaying, snapshot.Status)

	_, err = m.SetReady("ghost", code)
	assert.ErrorIs(t, err, ErrNotInRoom)
}

func TestAttackBeforePlaying(t *testing.T) {
	m, code := newPlacingGame(t)
	_, err := m.Attack("p1", code, battleship.Position{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrGameNotInProgress)
}

func TestAttackWrongTurn(t *testing.T) {
	m, code := newPlayingGame(t)
	waiting := opponentOf(turnHolder(t, m, code))

	_, err := m.Attack(waiting, code, battleship.Position{X: 9, Y: 9})
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestTurnPassesOnlyOnMiss(t *testing.T) {
	m, code := newPlayingGame(t)
	attacker := turnHolder(t, m, code)
	defender := opponentOf(attacker)

	// Hit: (0,0) is the carrier on every test board, the attacker keeps the turn
	outcome, err := m.Attack(attacker, code, battleship.Position{X: 0, Y: 0})
	require.NoError(t, err)
	assert.True(t, outcome.Hit)
	assert.Equal(t, attacker, turnHolder(t, m, code))

	// Another hit keeps it again
	outcome, err = m.Attack(attacker, code, battleship.Position{X: 1, Y: 0})
	require.NoError(t, err)
	assert.True(t, outcome.Hit)
	assert.Equal(t, attacker, turnHolder(t, m, code))

	// Miss: row 9 is open water, the turn passes
	outcome, err = m.Attack(attacker, code, battleship.Position{X: 0, Y: 9})
	require.NoError(t, err)
	assert.False(t, outcome.Hit)
	assert.Equal(t, defender, turnHolder(t, m, code))

	// And a miss from the other side passes it straight back
	outcome, err = m.Attack(defender, code, battleship.Position{X: 1, Y: 9})
	require.NoError(t, err)
	assert.False(t, outcome.Hit)
	assert.Equal(t, attacker, turnHolder(t, m, code))
}

func TestAttackResolvedCellFails(t *testing.T) {
	m, code := newPlayingGame(t)
	attacker := turnHolder(t, m, code)

	_, err := m.Attack(attacker, code, battleship.Position{X: 0, Y: 0})
	require.NoError(t, err)

	// Hit kept the turn, so the same player can try the same cell again
	_, err = m.Attack(attacker, code, battleship.Position{X: 0, Y: 0})
	assert.ErrorIs(t, err, battleship.ErrCellAlreadyAttacked)
	assert.Equal(t, attacker, turnHolder(t, m, code), "failed attacks never move the turn")
}

func TestAttackOutOfBounds(t *testing.T) {
	m, code := newPlayingGame(t)
	attacker := turnHolder(t, m, code)

	_, err := m.Attack(attacker, code, battleship.Position{X: 10, Y: 3})
	assert.ErrorIs(t, err, battleship.ErrOutOfBounds)
}

func TestAttackWithoutOpponent(t *testing.T) {
	m, code := newPlayingGame(t)
	attacker := turnHolder(t, m, code)

	_, err := m.RemovePlayer(opponentOf(attacker), code)
	require.NoError(t, err)

	_, err = m.Attack(attacker, code, battleship.Position{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrNoOpponent)
}

func TestSinkDestroyerKeepsTurn(t *testing.T) {
	m, code := newPlayingGame(t)
	attacker := turnHolder(t, m, code)

	// Destroyer sits at (0,8)-(1,8), two hits back to back sink it
	first, err := m.Attack(attacker, code, battleship.Position{X: 0, Y: 8})
	require.NoError(t, err)
	assert.True(t, first.Hit)
	assert.Nil(t, first.Sunk)
	assert.Equal(t, attacker, turnHolder(t, m, code))

	second, err := m.Attack(attacker, code, battleship.Position{X: 1, Y: 8})
	require.NoError(t, err)
	assert.True(t, second.Hit)
	require.NotNil(t, second.Sunk)
	assert.Equal(t, game_constants.ShipDestroyer, second.Sunk.ID)
	assert.Equal(t, 2, second.Sunk.Size)
	assert.False(t, second.GameOver)
	assert.Equal(t, attacker, turnHolder(t, m, code))
}

func TestWinDetectedOnTheSinkingShot(t *testing.T) {
	m, code := newPlayingGame(t)
	attacker := turnHolder(t, m, code)

	cells := fleetCells()
	for i, pos := range cells {
		outcome, err := m.Attack(attacker, code, pos)
		require.NoError(t, err)
		require.True(t, outcome.Hit)

		if i < len(cells)-1 {
			assert.False(t, outcome.GameOver, "game over before the last cell (%v)", pos)
		} else {
			assert.True(t, outcome.GameOver, "the shot that sinks the last ship ends the game")
			require.NotNil(t, outcome.Sunk)
		}
	}

	snapshot, err := m.RoomSnapshot(code)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusFinished, snapshot.Status)

	state, err := m.GameState(attacker, code)
	require.NoError(t, err)
	assert.Equal(t, attacker, state.Winner)
	assert.Empty(t, state.CurrentTurn)

	// Terminal state: no more shooting
	_, err = m.Attack(attacker, code, battleship.Position{X: 9, Y: 9})
	assert.ErrorIs(t, err, ErrGameNotInProgress)

	// EndGame after the fact is a harmless no-op
	m.EndGame(code)
	snapshot, err = m.RoomSnapshot(code)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusFinished, snapshot.Status)
}

func TestShipIDsAreScopedPerPlayerAndRoom(t *testing.T) {
	m, code := newPlacingGame(t)

	// Both players in the same room use the same cruiser id
	_, err := m.PlaceShip("p1", code, Placement{ShipID: game_constants.ShipCruiser, StartX: 0, StartY: 0, Orientation: battleship.Horizontal})
	require.NoError(t, err)
	_, err = m.PlaceShip("p2", code, Placement{ShipID: game_constants.ShipCruiser, StartX: 0, StartY: 0, Orientation: battleship.Horizontal})
	require.NoError(t, err)

	// And a second room does not see the first room's bookkeeping at all
	other := m.CreateRoom("q1", "Carla")
	_, err = m.JoinRoom("q2", "Dani", other)
	require.NoError(t, err)
	require.NoError(t, m.StartGame(other))
	_, err = m.PlaceShip("q1", other, Placement{ShipID: game_constants.ShipCruiser, StartX: 0, StartY: 0, Orientation: battleship.Horizontal})
	require.NoError(t, err)
}

func TestProjectionHidesUnhitShips(t *testing.T) {
	m, code := newPlayingGame(t)
	attacker := turnHolder(t, m, code)
	defender := opponentOf(attacker)

	state, err := m.GameState(attacker, code)
	require.NoError(t, err)

	ownShipCells := 0
	for _, row := range state.PlayerBoard {
		for _, cell := range row {
			if cell == models.WireCellShip {
				ownShipCells++
			}
		}
	}
	assert.Equal(t, 17, ownShipCells, "own board shows the full fleet")

	for _, row := range state.EnemyBoard {
		for _, cell := range row {
			assert.Equal(t, models.WireCellEmpty, cell, "enemy board starts fully unknown")
		}
	}

	// One hit and one miss later, exactly those two cells are revealed
	_, err = m.Attack(attacker, code, battleship.Position{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = m.Attack(attacker, code, battleship.Position{X: 9, Y: 9})
	require.NoError(t, err)

	state, err = m.GameState(attacker, code)
	require.NoError(t, err)
	assert.Equal(t, models.WireCellHit, state.EnemyBoard[0][0])
	assert.Equal(t, models.WireCellMiss, state.EnemyBoard[9][9])
	for y, row := range state.EnemyBoard {
		for x, cell := range row {
			assert.NotEqual(t, models.WireCellShip, cell, "ship at (%d,%d) leaked", x, y)
		}
	}

	// The defender sees the damage on their own board in full detail
	state, err = m.GameState(defender, code)
	require.NoError(t, err)
	assert.Equal(t, models.WireCellHit, state.PlayerBoard[0][0])
	assert.Equal(t, models.WireCellMiss, state.PlayerBoard[9][9])
	assert.Equal(t, models.WireCellShip, state.PlayerBoard[0][1])
}

func TestGameStateErrors(t *testing.T) {
	m := NewManager()
	code := m.CreateRoom("p1", "Ana")

	_, err := m.GameState("p1", "NOSUCH")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = m.GameState("p1", code)
	assert.ErrorIs(t, err, ErrGameNotStarted)

	_, err = m.JoinRoom("p2", "Beto", code)
	require.NoError(t, err)
	require.NoError(t, m.StartGame(code))

	_, err = m.GameState("ghost", code)
	assert.ErrorIs(t, err, ErrNotInRoom)
}
