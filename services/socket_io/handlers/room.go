package handlers

import (
	"log"

	"Armada/services/rooms"
	socketio_types "Armada/services/socket_io/types"
	socketio_utils "Armada/services/socket_io/utils"

	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle the create-room event. A fresh room code is generated,
// the sender becomes the room's first player and joins the matching
// socket.io room so later broadcasts reach it.
func HandleCreateRoom(manager *rooms.Manager, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, err := socketio_utils.Decode[socketio_types.CreateRoomPayload](args)
		if err == nil {
			err = payload.Validate()
		}
		if err != nil {
			emitError(client, "CREATE", err)
			return
		}

		playerID := string(client.Id())
		code := manager.CreateRoom(playerID, payload.Name)
		client.Join(socket.Room(code))

		log.Printf("[CREATE-SUCCESS] room %s created by %s (socket %s)", code, payload.Name, client.Id())
		client.Emit("room-created", socketio_types.RoomCreatedPayload{RoomCode: code})
	}
}

// Function to handle the join-room event. On success the sender gets the
// room snapshot and everyone already in the room is told about the new
// player. Protocol violations (unknown code, full room, started game) are
// relayed as an error event to the sender only.
func HandleJoinRoom(manager *rooms.Manager, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, err := socketio_utils.Decode[socketio_types.JoinRoomPayload](args)
		if err == nil {
			err = payload.Validate()
		}
		if err != nil {
			emitError(client, "JOIN", err)
			return
		}

		playerID := string(client.Id())
		snapshot, err := manager.JoinRoom(playerID, payload.Name, payload.RoomCode)
		if err != nil {
			emitError(client, "JOIN", err)
			return
		}

		client.Join(socket.Room(snapshot.Code))

		log.Printf("[JOIN-SUCCESS] %s joined room %s (socket %s)", payload.Name, snapshot.Code, client.Id())
		client.Emit("room-joined", snapshot)
		client.To(socket.Room(snapshot.Code)).Emit("player-joined", snapshot.Players)
	}
}

// Function to handle the leave-room event. Leaving while not in any room is
// a silent no-op. When the last player leaves, the room and all its boards
// are dropped immediately.
func HandleLeaveRoom(manager *rooms.Manager, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		code, ok := manager.RoomOf(playerID)
		if !ok {
			return
		}

		client.Leave(socket.Room(code))
		room, err := manager.RemovePlayer(playerID, code)
		if err != nil {
			log.Printf("[LEAVE-ERROR] %v (socket %s)", err, client.Id())
			return
		}

		log.Printf("[LEAVE-SUCCESS] socket %s left room %s", client.Id(), code)
		if room != nil {
			client.To(socket.Room(code)).Emit("player-left", room.Players)
		}
	}
}

// Function to handle the get-room-info event: replies with the snapshot of
// the room the sender currently sits in.
func HandleGetRoomInfo(manager *rooms.Manager, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		code, ok := manager.RoomOf(playerID)
		if !ok {
			emitError(client, "INFO", rooms.ErrNotInRoom)
			return
		}

		snapshot, err := manager.RoomSnapshot(code)
		if err != nil {
			emitError(client, "INFO", err)
			return
		}
		client.Emit("room-info", snapshot)
	}
}
