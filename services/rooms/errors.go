package rooms

import "errors"

// Protocol errors raised at the registry / state machine boundary. The
// socket.io gateway catches them and relays a single error event to the
// offending sender, no state is mutated when one of these is returned.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrNotEnoughPlayers   = errors.New("two players are needed to start")
	ErrNotInRoom          = errors.New("player is not in this room")
	ErrGameNotStarted     = errors.New("game has not been started")
	ErrGameNotInProgress  = errors.New("game is not in progress")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrNoOpponent         = errors.New("no opponent in the room")
	ErrUnknownShip        = errors.New("unknown ship id")
	ErrShipAlreadyPlaced  = errors.New("ship has already been placed")

	// ErrBoardsNotReady is an internal invariant violation (room in playing
	// state without initialized boards). It aborts the single operation and
	// gets logged, players only see a generic error.
	ErrBoardsNotReady = errors.New("boards are not initialized")
)
