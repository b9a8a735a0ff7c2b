package component

import "github.com/plus3/grit/ecs"

// Tile is one cell of a tile map. Occupant is ecs.None when the cell is
// empty. Disabled tiles are skipped by name-keyed entity queries.
type Tile struct {
	Col, Row int
	Walkable bool
	Occupant ecs.Entity
	Enabled  bool
}

func (t Tile) Active() bool { return t.Enabled }

// Occupied reports whether something stands on the tile.
func (t Tile) Occupied() bool { return t.Occupant != ecs.None }

// NewTile returns an enabled, walkable, empty tile at (col, row).
func NewTile(col, row int) Tile {
	return Tile{
		Col:      col,
		Row:      row,
		Walkable: true,
		Occupant: ecs.None,
		Enabled:  true,
	}
}

// Unit is something that stands on tiles. OccupiedTile is ecs.None when
// the unit is off the map.
type Unit struct {
	OccupiedTile ecs.Entity
	MoveSpeed    float32
	Enabled      bool
}

func (u Unit) Active() bool { return u.Enabled }

// NewUnit returns an enabled unit standing on no tile.
func NewUnit(moveSpeed float32) Unit {
	return Unit{
		OccupiedTile: ecs.None,
		MoveSpeed:    moveSpeed,
		Enabled:      true,
	}
}
