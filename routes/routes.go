package routes

import (
	"Armada/controllers"
	"Armada/services/rooms"
	socketio_types "Armada/services/socket_io/types"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the HTTP status endpoints. All gameplay goes over
// the socket.io channel, the HTTP surface only answers liveness and counters.
func SetupRoutes(router *gin.Engine, manager *rooms.Manager, sio *socketio_types.SocketServer) {
	router.GET("/ping", controllers.Ping)

	api := router.Group("/api")

	api.GET("/health", controllers.Health)

	api.GET("/stats", controllers.Stats(manager, sio))
}
