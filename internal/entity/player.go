package entity

import (
	"fmt"
	"math/rand"
	"strings"
)

// Player is the mark of one of the two sides taking turns on the board.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// ParsePlayer - converts a user supplied mark ("x", "O", ...) into a Player.
func ParsePlayer(mark string) (Player, error) {
	switch player := Player(strings.ToUpper(strings.TrimSpace(mark))); player {
	case PlayerX, PlayerO:
		return player, nil
	default:
		return "", fmt.Errorf("unknown player mark %q", mark)
	}
}

// RandomPlayer - picks X or O with equal probability.
func RandomPlayer() Player {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX
	}
	return PlayerO
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return string(that)
}

// Cell is the occupancy of a single grid position.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

// CellOf returns the cell value a player leaves behind after moving.
func CellOf(player Player) Cell {
	if player == PlayerX {
		return CellX
	}
	return CellO
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Player returns the player occupying the cell, ok is false for an empty cell.
func (that Cell) Player() (Player, bool) {
	switch that {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return "", false
	}
}
