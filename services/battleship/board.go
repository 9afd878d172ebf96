package battleship

import (
	game_constants "Armada/constants/game"

	"github.com/google/uuid"
)

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

type CellStatus int

const (
	CellEmpty CellStatus = iota
	CellShip
	CellHit
	CellMiss
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Ship is created once at placement and never moves. Sunk is derived from
// Hits == Size and flips exactly once.
type Ship struct {
	ID          string
	TypeID      int
	Name        string
	Size        int
	Positions   []Position
	Hits        int
	Sunk        bool
	Orientation Orientation
}

type Cell struct {
	Status CellStatus
	ShipID string // empty unless Status is CellShip or CellHit
}

// Board is a player's own grid. Cells are indexed [y][x].
type Board struct {
	Cells [game_constants.BoardSize][game_constants.BoardSize]Cell
	Ships []*Ship
}

func NewBoard() *Board {
	return &Board{}
}

// WithinBounds reports whether pos is inside the grid.
func WithinBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < game_constants.BoardSize &&
		pos.Y >= 0 && pos.Y < game_constants.BoardSize
}

// ShipSpan returns the size contiguous cells a ship would occupy starting at
// origin, extending +x when horizontal and +y when vertical. It does not
// clip, callers bounds-check the result.
func ShipSpan(origin Position, size int, orientation Orientation) []Position {
	span := make([]Position, 0, size)
	for i := 0; i < size; i++ {
		if orientation == Horizontal {
			span = append(span, Position{X: origin.X + i, Y: origin.Y})
		} else {
			span = append(span, Position{X: origin.X, Y: origin.Y + i})
		}
	}
	return span
}

// CanPlace reports whether a ship of the given size fits at origin. It fails
// when any cell falls off the board, is already occupied, or touches an
// existing ship orthogonally or diagonally (Chebyshev distance < 2).
func (b *Board) CanPlace(origin Position, size int, orientation Orientation) error {
	span := ShipSpan(origin, size, orientation)

	for _, pos := range span {
		if !WithinBounds(pos) {
			return ErrOutOfBounds
		}
	}

	for _, pos := range span {
		if b.Cells[pos.Y][pos.X].Status == CellShip {
			return ErrCellOccupied
		}
	}

	// No ship may sit in the 8-neighbourhood of another ship's cells
	for _, pos := range span {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				adj := Position{X: pos.X + dx, Y: pos.Y + dy}
				if !WithinBounds(adj) {
					continue
				}
				if b.Cells[adj.Y][adj.X].Status == CellShip {
					return ErrShipAdjacent
				}
			}
		}
	}

	return nil
}

// Place puts a new ship on the board. On any validation failure the board is
// left untouched and the reason is returned. Ship identity is freshly
// generated on every successful placement.
func (b *Board) Place(typeID int, name string, origin Position, size int, orientation Orientation) (*Ship, error) {
	if err := b.CanPlace(origin, size, orientation); err != nil {
		return nil, err
	}

	ship := &Ship{
		ID:          uuid.NewString(),
		TypeID:      typeID,
		Name:        name,
		Size:        size,
		Positions:   ShipSpan(origin, size, orientation),
		Orientation: orientation,
	}

	for _, pos := range ship.Positions {
		b.Cells[pos.Y][pos.X] = Cell{Status: CellShip, ShipID: ship.ID}
	}
	b.Ships = append(b.Ships, ship)

	return ship, nil
}

// AttackResult reports what a single shot did.
type AttackResult struct {
	Pos  Position
	Hit  bool
	Sunk *Ship // non-nil only on the shot that sinks the ship
}

// Attack resolves a shot against this board. Cells transition empty->miss or
// ship->hit; hit and miss cells are terminal, shooting them again returns
// ErrCellAlreadyAttacked with the board unchanged.
func (b *Board) Attack(pos Position) (AttackResult, error) {
	result := AttackResult{Pos: pos}

	if !WithinBounds(pos) {
		return result, ErrOutOfBounds
	}

	cell := &b.Cells[pos.Y][pos.X]
	switch cell.Status {
	case CellHit, CellMiss:
		return result, ErrCellAlreadyAttacked
	case CellShip:
		cell.Status = CellHit
		result.Hit = true
		if ship := b.shipByID(cell.ShipID); ship != nil {
			ship.Hits++
			if ship.Hits == ship.Size {
				ship.Sunk = true
				result.Sunk = ship
			}
		}
	default:
		cell.Status = CellMiss
	}

	return result, nil
}

// AllSunk reports whether every ship on the board has been fully hit. It is
// false for a board with no ships.
func (b *Board) AllSunk() bool {
	if len(b.Ships) == 0 {
		return false
	}
	for _, ship := range b.Ships {
		if !ship.Sunk {
			return false
		}
	}
	return true
}

func (b *Board) shipByID(id string) *Ship {
	for _, ship := range b.Ships {
		if ship.ID == id {
			return ship
		}
	}
	return nil
}
