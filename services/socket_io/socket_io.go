package socket_io

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Armada/services/rooms"
	"Armada/services/socket_io/handlers"
	socketio_types "Armada/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and wires every game
// event to its handler. Player identity is the socket id for the lifetime
// of the connection, there are no accounts.
func (sio *MySocketServer) Start(router *gin.Engine, manager *rooms.Manager) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the map, otherwise it panics
	sio.UserConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		playerID := string(client.Id())

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(playerID, client)
		log.Printf("[CONNECT] new client connected: %s", playerID)

		// Open a new game room
		client.On("create-room", handlers.HandleCreateRoom(manager, client))

		// Join an existing room by code
		client.On("join-room", handlers.HandleJoinRoom(manager, client))

		// Leave the current room voluntarily
		client.On("leave-room", handlers.HandleLeaveRoom(manager, client))

		// Snapshot of the sender's current room
		client.On("get-room-info", handlers.HandleGetRoomInfo(manager, client))

		// Allocate boards and draw the first turn
		client.On("start-game", handlers.HandleStartGame(manager, client, (*socketio_types.SocketServer)(sio)))

		// Place one ship on the sender's own board
		client.On("place-ship", handlers.HandlePlaceShip(manager, client))

		// Mark the sender ready; second ready starts the shooting
		client.On("player-ready", handlers.HandlePlayerReady(manager, client, (*socketio_types.SocketServer)(sio)))

		// Fire at the opponent's board
		client.On("attack", handlers.HandleAttack(manager, client, (*socketio_types.SocketServer)(sio)))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(manager, client, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
