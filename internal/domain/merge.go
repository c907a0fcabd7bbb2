package domain

type MergedSeat struct {
	SeatCoordinate
	Available bool
}

// MergedSeatingSchema is a point-in-time view of a session's seats. It is
// computed per request and never stored.
type MergedSeatingSchema struct {
	HallID int
	Seats  []MergedSeat
}

func (m MergedSeatingSchema) AvailableCount() int {
	count := 0
	for _, s := range m.Seats {
		if s.Available {
			count++
		}
	}

	return count
}

// MergeSchema marks every schema seat as available unless its position is
// booked. Booked positions outside the schema are ignored.
func MergeSchema(schema SourceBookingSchema, booked map[SeatPosition]struct{}) MergedSeatingSchema {
	seats := make([]MergedSeat, len(schema.Seats))

	for i, s := range schema.Seats {
		_, taken := booked[s.Position()]
		seats[i] = MergedSeat{
			SeatCoordinate: s,
			Available:      !taken,
		}
	}

	return MergedSeatingSchema{
		HallID: schema.HallID,
		Seats:  seats,
	}
}

// BookedPositions indexes booked seat rows by position.
func BookedPositions(seats []BookingSeat) map[SeatPosition]struct{} {
	booked := make(map[SeatPosition]struct{}, len(seats))
	for _, s := range seats {
		booked[s.Position()] = struct{}{}
	}

	return booked
}
