package game_constants

// Board dimensions. The grid is always BoardSize x BoardSize.
const BoardSize = 10

const MaxPlayersPerRoom = 2

// Room codes are short join codes typed by the second player.
const RoomCodeLength = 6
const RoomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Ship type ids (1-5) - fixed by the client UI, one ship of each type per fleet
const (
	ShipCarrier    = 1
	ShipBattleship = 2
	ShipCruiser    = 3
	ShipSubmarine  = 4
	ShipDestroyer  = 5
)

const FleetSize = 5

// ShipSizes maps a ship type id to its length in cells.
// NOTE: cruiser and submarine share size 3, they are still distinct ships.
var ShipSizes = map[int]int{
	ShipCarrier:    5,
	ShipBattleship: 4,
	ShipCruiser:    3,
	ShipSubmarine:  3,
	ShipDestroyer:  2,
}

// ShipNames maps a ship type id to its display name.
var ShipNames = map[int]string{
	ShipCarrier:    "Carrier",
	ShipBattleship: "Battleship",
	ShipCruiser:    "Cruiser",
	ShipSubmarine:  "Submarine",
	ShipDestroyer:  "Destroyer",
}
