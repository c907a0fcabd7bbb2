package domain

import (
	"fmt"
	"strings"
)

type SeatType string

const (
	SeatTypeStandard   SeatType = "STANDARD"
	SeatTypeVIP        SeatType = "VIP"
	SeatTypeAccessible SeatType = "ACCESSIBLE"
	SeatTypeRecliner   SeatType = "RECLINER"
)

func (t SeatType) Valid() bool {
	switch t {
	case SeatTypeStandard, SeatTypeVIP, SeatTypeAccessible, SeatTypeRecliner:
		return true
	}

	return false
}

// SeatPosition identifies a seat inside a hall. Rows and columns are 1-based.
type SeatPosition struct {
	Row    int
	Column int
}

func (p SeatPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

type SeatCoordinate struct {
	Row      int
	Column   int
	SeatType SeatType
}

func (c SeatCoordinate) Position() SeatPosition {
	return SeatPosition{Row: c.Row, Column: c.Column}
}

func (c SeatCoordinate) String() string {
	return c.Position().String()
}

func formatPositions(positions []SeatPosition) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = p.String()
	}

	return strings.Join(parts, ", ")
}

func formatSeats(seats []SeatCoordinate) string {
	return formatPositions(Positions(seats))
}

func Positions(seats []SeatCoordinate) []SeatPosition {
	positions := make([]SeatPosition, len(seats))
	for i, s := range seats {
		positions[i] = s.Position()
	}

	return positions
}
