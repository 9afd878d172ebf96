package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Armada/services/rooms"
	socketio_types "Armada/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newStatusRouter(manager *rooms.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", Ping)
	router.GET("/api/health", Health)
	router.GET("/api/stats", Stats(manager, socketio_types.NewSocketServer()))
	return router
}

func TestPing(t *testing.T) {
	router := newStatusRouter(rooms.NewManager())

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "pong", response["message"])
}

func TestHealth(t *testing.T) {
	router := newStatusRouter(rooms.NewManager())

	req, _ := http.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "Server is running", response["message"])
}

func TestStats(t *testing.T) {
	manager := rooms.NewManager()
	router := newStatusRouter(manager)

	code := manager.CreateRoom("p1", "Ana")
	manager.JoinRoom("p2", "Beto", code)

	req, _ := http.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["rooms"])
	assert.Equal(t, float64(2), response["players"])
	assert.Equal(t, float64(0), response["connections"])
}
