package integration_test

const (
	TestUserId      = 1
	OtherTestUserId = 2

	// Hall 1 is a valid 3+2 hall, hall 2 declares more rows than it has
	// seat counts for.
	TestHallId       = 1
	BrokenTestHallId = 2

	// Session 1 is open for booking, session 2 runs in the broken hall and
	// session 3 starts too soon to be booked.
	TestMovieSessionId       = 1
	BrokenTestMovieSessionId = 2
	EarlyTestMovieSessionId  = 3

	// Seeded booking of OtherTestUserId on seat (1,3) of session 1.
	TestBookingId = 1

	MissingId = 999

	minDaysUntilBooking = 2
)
