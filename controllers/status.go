package controllers

import (
	"net/http"

	"Armada/services/rooms"
	socketio_types "Armada/services/socket_io/types"

	"github.com/gin-gonic/gin"
)

// @Summary Endpoint just pings the server
// @Description Returns a basic message
// @Tags test
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}

// @Summary Health check
// @Description Reports whether the server is up
// @Tags test
// @Produce json
// @Success 200 {object} object{status=string,message=string}
// @Router /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
}

// @Summary Live game counters
// @Description Returns how many rooms are open, how many players sit in them and how many sockets are connected
// @Tags test
// @Produce json
// @Success 200 {object} object{rooms=int,players=int,connections=int}
// @Router /api/stats [get]
func Stats(manager *rooms.Manager, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCount, playerCount := manager.Stats()
		c.JSON(http.StatusOK, gin.H{
			"rooms":       roomCount,
			"players":     playerCount,
			"connections": sio.ConnectionCount(),
		})
	}
}
