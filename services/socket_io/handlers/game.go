package handlers

import (
	"log"

	"Armada/services/battleship"
	"Armada/services/rooms"
	socketio_types "Armada/services/socket_io/types"
	socketio_utils "Armada/services/socket_io/utils"

	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle the start-game event. Boards are allocated and the
// first turn holder is drawn, then game-started goes out to the whole room.
// The sender must actually sit in the room it tries to start.
func HandleStartGame(manager *rooms.Manager, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, err := socketio_utils.Decode[socketio_types.StartGamePayload](args)
		if err == nil {
			err = payload.Validate()
		}
		if err != nil {
			emitError(client, "START", err)
			return
		}

		playerID := string(client.Id())
		if code, ok := manager.RoomOf(playerID); !ok || code != payload.RoomCode {
			emitError(client, "START", rooms.ErrNotInRoom)
			return
		}

		if err := manager.StartGame(payload.RoomCode); err != nil {
			emitError(client, "START", err)
			return
		}

		log.Printf("[START-SUCCESS] game started in room %s", payload.RoomCode)
		sio.Sio_server.To(socket.Room(payload.RoomCode)).Emit("game-started")
	}
}

// Function to handle the place-ship event. The placement only ever touches
// the sender's own board and the refreshed view goes back to the sender
// only - invalid attempts are never broadcast, so the opponent learns
// nothing about the fleet.
func HandlePlaceShip(manager *rooms.Manager, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, err := socketio_utils.Decode[socketio_types.PlaceShipPayload](args)
		if err == nil {
			err = payload.Validate()
		}
		if err != nil {
			emitError(client, "PLACE", err)
			return
		}

		playerID := string(client.Id())
		code, ok := manager.RoomOf(playerID)
		if !ok {
			emitError(client, "PLACE", rooms.ErrNotInRoom)
			return
		}

		placement := rooms.Placement{
			ShipID:      payload.ShipID,
			StartX:      payload.StartX,
			StartY:      payload.StartY,
			Orientation: battleship.Orientation(payload.Orientation),
		}
		if _, err := manager.PlaceShip(playerID, code, placement); err != nil {
			emitError(client, "PLACE", err)
			return
		}

		state, err := manager.GameState(playerID, code)
		if err != nil {
			emitError(client, "PLACE", err)
			return
		}
		client.Emit("game-update", state)
	}
}

// Function to handle the player-ready event. When the second ready arrives
// the room advances to playing, all-players-ready goes out to the room and
// every player receives their projected view.
func HandlePlayerReady(manager *rooms.Manager, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		code, ok := manager.RoomOf(playerID)
		if !ok {
			emitError(client, "READY", rooms.ErrNotInRoom)
			return
		}

		allReady, err := manager.SetReady(playerID, code)
		if err != nil {
			emitError(client, "READY", err)
			return
		}

		log.Printf("[READY] socket %s ready in room %s (all=%t)", client.Id(), code, allReady)
		if allReady {
			sio.Sio_server.To(socket.Room(code)).Emit("all-players-ready")
			broadcastGameState(manager, sio, code)
		}
	}
}

// Function to handle the attack event. The shot is adjudicated against the
// opponent's board, both players get their refreshed view, and if the shot
// sank the last ship the room is told who won and the game ends.
func HandleAttack(manager *rooms.Manager, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, err := socketio_utils.Decode[socketio_types.AttackPayload](args)
		if err != nil {
			emitError(client, "ATTACK", err)
			return
		}

		playerID := string(client.Id())
		code, ok := manager.RoomOf(playerID)
		if !ok {
			emitError(client, "ATTACK", rooms.ErrNotInRoom)
			return
		}

		outcome, err := manager.Attack(playerID, code, battleship.Position{X: payload.X, Y: payload.Y})
		if err != nil {
			emitError(client, "ATTACK", err)
			return
		}

		log.Printf("[ATTACK] socket %s fired at (%d,%d) in %s: hit=%t gameOver=%t",
			client.Id(), outcome.X, outcome.Y, code, outcome.Hit, outcome.GameOver)
		broadcastGameState(manager, sio, code)

		if outcome.GameOver {
			winner, _ := manager.Player(playerID)
			sio.Sio_server.To(socket.Room(code)).Emit("game-over", socketio_types.GameOverPayload{Winner: winner})
			manager.EndGame(code)
		}
	}
}

// broadcastGameState fans the per-player projected views out through each
// player's own connection. Views are recomputed on every state change, this
// is the only representation that crosses the boundary.
func broadcastGameState(manager *rooms.Manager, sio *socketio_types.SocketServer, code string) {
	for _, playerID := range manager.PlayerIDs(code) {
		state, err := manager.GameState(playerID, code)
		if err != nil {
			log.Printf("[UPDATE-ERROR] projecting state for %s in %s: %v", playerID, code, err)
			continue
		}
		if conn, ok := sio.GetConnection(playerID); ok {
			conn.Emit("game-update", state)
		}
	}
}
