package domain

type ValidationResult struct {
	OK           bool
	InvalidSeats []SeatCoordinate
}

// ValidateDesiredSeats reports the desired seats that are not part of the
// schema. A seat that names a type different from the schema's type for that
// position is invalid too. Repeated positions are reported once.
func ValidateDesiredSeats(schema SourceBookingSchema, desired []SeatCoordinate) ValidationResult {
	seen := make(map[SeatPosition]struct{}, len(desired))
	var invalid []SeatCoordinate

	for _, seat := range desired {
		pos := seat.Position()
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}

		seatType, ok := schema.Lookup(pos)
		if !ok || (seat.SeatType != "" && seat.SeatType != seatType) {
			invalid = append(invalid, seat)
		}
	}

	return ValidationResult{
		OK:           len(invalid) == 0,
		InvalidSeats: invalid,
	}
}

// CheckDuplicateSeats rejects requests that list the same position more than
// once.
func CheckDuplicateSeats(desired []SeatCoordinate) error {
	counts := make(map[SeatPosition]int, len(desired))
	var duplicates []SeatPosition

	for _, seat := range desired {
		pos := seat.Position()
		counts[pos]++
		if counts[pos] == 2 {
			duplicates = append(duplicates, pos)
		}
	}

	if len(duplicates) > 0 {
		return &DuplicateSeatError{Duplicates: duplicates}
	}

	return nil
}

// FindConflicts returns the desired seats whose positions are already booked,
// in request order.
func FindConflicts(desired []SeatCoordinate, booked map[SeatPosition]struct{}) []SeatCoordinate {
	var conflicts []SeatCoordinate

	for _, seat := range desired {
		if _, ok := booked[seat.Position()]; ok {
			conflicts = append(conflicts, seat)
		}
	}

	return conflicts
}

// ResolveSeatTypes fills in the schema's seat type for every desired seat.
// The seats must already be validated against the schema.
func ResolveSeatTypes(schema SourceBookingSchema, desired []SeatCoordinate) []SeatCoordinate {
	resolved := make([]SeatCoordinate, len(desired))

	for i, seat := range desired {
		seatType, _ := schema.Lookup(seat.Position())
		resolved[i] = SeatCoordinate{Row: seat.Row, Column: seat.Column, SeatType: seatType}
	}

	return resolved
}
