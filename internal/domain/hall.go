package domain

import (
	"context"
	"fmt"
)

// HallLayout is the seating configuration of a cinema hall as stored by the
// hall catalogue. SeatsPerRow is indexed by row-1.
type HallLayout struct {
	HallID      int
	Rows        int
	SeatsPerRow []int
	SeatTypes   map[SeatPosition]SeatType
}

type HallRepository interface {
	GetLayout(ctx context.Context, hallID int) (*HallLayout, error)
}

// SourceBookingSchema is the full set of bookable coordinates of a hall,
// ordered by row and then column.
type SourceBookingSchema struct {
	HallID int
	Seats  []SeatCoordinate

	index map[SeatPosition]SeatType
}

func NewSourceSchema(hallID int, seats []SeatCoordinate) SourceBookingSchema {
	index := make(map[SeatPosition]SeatType, len(seats))
	for _, s := range seats {
		index[s.Position()] = s.SeatType
	}

	return SourceBookingSchema{
		HallID: hallID,
		Seats:  seats,
		index:  index,
	}
}

func (s SourceBookingSchema) Len() int {
	return len(s.Seats)
}

// Lookup returns the seat type stored for the given position.
func (s SourceBookingSchema) Lookup(p SeatPosition) (SeatType, bool) {
	if s.index == nil {
		for _, seat := range s.Seats {
			if seat.Position() == p {
				return seat.SeatType, true
			}
		}

		return "", false
	}

	t, ok := s.index[p]
	return t, ok
}

// BuildSourceSchema expands a hall layout into every bookable coordinate.
// Seats without an explicit type are STANDARD.
func BuildSourceSchema(layout HallLayout) (SourceBookingSchema, error) {
	if layout.Rows <= 0 {
		return SourceBookingSchema{}, &ConfigurationError{
			HallID: layout.HallID,
			Reason: fmt.Sprintf("hall must have at least one row, got %d", layout.Rows),
		}
	}

	if len(layout.SeatsPerRow) != layout.Rows {
		return SourceBookingSchema{}, &ConfigurationError{
			HallID: layout.HallID,
			Reason: fmt.Sprintf("seat counts are defined for %d rows but the hall has %d", len(layout.SeatsPerRow), layout.Rows),
		}
	}

	total := 0
	for i, n := range layout.SeatsPerRow {
		if n <= 0 {
			return SourceBookingSchema{}, &ConfigurationError{
				HallID: layout.HallID,
				Reason: fmt.Sprintf("row %d must have at least one seat, got %d", i+1, n),
			}
		}
		total += n
	}

	for pos, t := range layout.SeatTypes {
		if pos.Row < 1 || pos.Row > layout.Rows || pos.Column < 1 || pos.Column > layout.SeatsPerRow[pos.Row-1] {
			return SourceBookingSchema{}, &ConfigurationError{
				HallID: layout.HallID,
				Reason: fmt.Sprintf("seat type is defined for %s which is outside of the hall", pos),
			}
		}

		if !t.Valid() {
			return SourceBookingSchema{}, &ConfigurationError{
				HallID: layout.HallID,
				Reason: fmt.Sprintf("unknown seat type %q at %s", t, pos),
			}
		}
	}

	seats := make([]SeatCoordinate, 0, total)
	for row := 1; row <= layout.Rows; row++ {
		for col := 1; col <= layout.SeatsPerRow[row-1]; col++ {
			seatType, ok := layout.SeatTypes[SeatPosition{Row: row, Column: col}]
			if !ok {
				seatType = SeatTypeStandard
			}

			seats = append(seats, SeatCoordinate{Row: row, Column: col, SeatType: seatType})
		}
	}

	return NewSourceSchema(layout.HallID, seats), nil
}
