package handlers

import (
	"errors"
	"log"

	"Armada/services/battleship"
	"Armada/services/rooms"
	socketio_utils "Armada/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Translation table from service errors to the human-readable messages the
// client shows. Anything not listed falls through to its error text.
var errorMessages = []struct {
	err error
	msg string
}{
	{rooms.ErrRoomNotFound, "The room does not exist"},
	{rooms.ErrRoomFull, "The room is full"},
	{rooms.ErrGameAlreadyStarted, "The game has already started"},
	{rooms.ErrNotEnoughPlayers, "Two players are needed to start the game"},
	{rooms.ErrNotInRoom, "You are not in a room"},
	{rooms.ErrGameNotStarted, "The game has not been started"},
	{rooms.ErrGameNotInProgress, "The game is not in progress"},
	{rooms.ErrNotYourTurn, "It is not your turn"},
	{rooms.ErrNoOpponent, "There is no opponent in the room"},
	{rooms.ErrUnknownShip, "Unknown ship"},
	{rooms.ErrShipAlreadyPlaced, "You have already placed that ship"},
	{battleship.ErrOutOfBounds, "Invalid coordinates"},
	{battleship.ErrCellOccupied, "There is already a ship in that position"},
	{battleship.ErrShipAdjacent, "Ships cannot touch each other"},
	{battleship.ErrCellAlreadyAttacked, "That cell has already been attacked"},
	{socketio_utils.ErrMissingPayload, "Missing event payload"},
	{socketio_utils.ErrInvalidPayload, "Invalid event payload"},
}

// emitError relays a failure as a single error event to the offending
// sender. Internal invariant violations abort the operation with a generic
// message, the details only go to the log.
func emitError(client *socket.Socket, tag string, err error) {
	if errors.Is(err, rooms.ErrBoardsNotReady) {
		log.Printf("[%s-FATAL] invariant violation: %v (socket %s)", tag, err, client.Id())
		client.Emit("error", gin.H{"error": "Internal server error"})
		return
	}

	log.Printf("[%s-ERROR] %v (socket %s)", tag, err, client.Id())
	client.Emit("error", gin.H{"error": errorMessage(err)})
}

func errorMessage(err error) string {
	for _, entry := range errorMessages {
		if errors.Is(err, entry.err) {
			return entry.msg
		}
	}
	return err.Error()
}
