package battleship

import "errors"

// Errors returned at the board engine boundary. Callers match them with
// errors.Is and decide how to answer the player, the engine never touches
// the board when it returns one of these.
var (
	ErrOutOfBounds         = errors.New("position is out of bounds")
	ErrCellOccupied        = errors.New("another ship already occupies that cell")
	ErrShipAdjacent        = errors.New("ships cannot touch each other")
	ErrCellAlreadyAttacked = errors.New("cell has already been attacked")
)
