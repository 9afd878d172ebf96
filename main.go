package main

import (
	"log"

	"Armada/config"
	"Armada/middleware"
	"Armada/routes"
	"Armada/services/rooms"
	"Armada/services/socket_io"
	socketio_types "Armada/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	cfg := config.Load()

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	// Single owner of every live room - no globals
	manager := rooms.NewManager()

	r := gin.Default()

	middleware.SetUpMiddleware(r, cfg)

	sio := &socket_io.MySocketServer{}
	sio.Start(r, manager)

	routes.SetupRoutes(r, manager, (*socketio_types.SocketServer)(sio))

	if cfg.UseHTTPS {
		if err := r.RunTLS(":"+cfg.Port, cfg.CertFile, cfg.KeyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
