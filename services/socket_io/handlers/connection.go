package handlers

import (
	"log"

	"Armada/services/rooms"
	socketio_types "Armada/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle socket.io client disconnections. A disconnect is an
// implicit leave-room: the player is removed from their room (dropping the
// room entirely if they were the last one) and the remaining player is told.
func HandleDisconnecting(manager *rooms.Manager, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		log.Printf("[DISCONNECT] socket %s disconnecting", client.Id())

		if code, ok := manager.RoomOf(playerID); ok {
			room, err := manager.RemovePlayer(playerID, code)
			if err != nil {
				log.Printf("[DISCONNECT-ERROR] removing %s from %s: %v", playerID, code, err)
			} else if room != nil {
				client.To(socket.Room(code)).Emit("player-left", room.Players)
			}
		}

		sio.RemoveConnection(playerID)
	}
}
