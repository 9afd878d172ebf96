package models

// RoomStatus is the lifecycle phase of a game room. It only ever advances:
// waiting -> placing -> playing -> finished.
type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"
	RoomStatusPlacing  RoomStatus = "placing"
	RoomStatusPlaying  RoomStatus = "playing"
	RoomStatusFinished RoomStatus = "finished"
)

// Player represents one of the (at most two) players in a room.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// Room is the public snapshot of a game room sent over the wire.
type Room struct {
	Code    string     `json:"code"`
	Players []Player   `json:"players"`
	Status  RoomStatus `json:"status"`
}
