package models

// Cell encoding used on the wire: 0 empty/unknown, 1 ship, 2 hit, 3 miss.
// The enemy board never contains 1 - unhit ships are not leaked.
const (
	WireCellEmpty = 0
	WireCellShip  = 1
	WireCellHit   = 2
	WireCellMiss  = 3
)

// GameState is the per-player projected view of a match. PlayerBoard carries
// the player's own board in full detail, EnemyBoard only reveals resolved
// attacks (hits and misses).
type GameState struct {
	PlayerBoard [][]int `json:"playerBoard"`
	EnemyBoard  [][]int `json:"enemyBoard"`
	CurrentTurn string  `json:"currentTurn"`
	Winner      string  `json:"winner,omitempty"`
}

// SunkShip describes a ship that has just been fully hit.
type SunkShip struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Size int    `json:"size"`
}
