package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSourceSchema(t *testing.T) {
	tests := []struct {
		name       string
		layout     HallLayout
		want       []SeatCoordinate
		wantErrMsg string
	}{
		{
			name: "should expand a rectangular hall in row-major order",
			layout: HallLayout{
				HallID:      1,
				Rows:        2,
				SeatsPerRow: []int{3, 3},
			},
			want: []SeatCoordinate{
				{Row: 1, Column: 1, SeatType: SeatTypeStandard},
				{Row: 1, Column: 2, SeatType: SeatTypeStandard},
				{Row: 1, Column: 3, SeatType: SeatTypeStandard},
				{Row: 2, Column: 1, SeatType: SeatTypeStandard},
				{Row: 2, Column: 2, SeatType: SeatTypeStandard},
				{Row: 2, Column: 3, SeatType: SeatTypeStandard},
			},
		},
		{
			name: "should keep explicit seat types and rows of different length",
			layout: HallLayout{
				HallID:      2,
				Rows:        2,
				SeatsPerRow: []int{1, 2},
				SeatTypes: map[SeatPosition]SeatType{
					{Row: 1, Column: 1}: SeatTypeAccessible,
					{Row: 2, Column: 2}: SeatTypeVIP,
				},
			},
			want: []SeatCoordinate{
				{Row: 1, Column: 1, SeatType: SeatTypeAccessible},
				{Row: 2, Column: 1, SeatType: SeatTypeStandard},
				{Row: 2, Column: 2, SeatType: SeatTypeVIP},
			},
		},
		{
			name:       "should fail when the hall has no rows",
			layout:     HallLayout{HallID: 3, Rows: 0},
			wantErrMsg: "invalid layout for cinema hall 3: hall must have at least one row, got 0",
		},
		{
			name:       "should fail when seat counts do not match the row count",
			layout:     HallLayout{HallID: 4, Rows: 3, SeatsPerRow: []int{2, 2}},
			wantErrMsg: "invalid layout for cinema hall 4: seat counts are defined for 2 rows but the hall has 3",
		},
		{
			name:       "should fail when a row has no seats",
			layout:     HallLayout{HallID: 5, Rows: 2, SeatsPerRow: []int{2, 0}},
			wantErrMsg: "invalid layout for cinema hall 5: row 2 must have at least one seat, got 0",
		},
		{
			name: "should fail when a seat type points outside of the hall",
			layout: HallLayout{
				HallID:      6,
				Rows:        1,
				SeatsPerRow: []int{2},
				SeatTypes:   map[SeatPosition]SeatType{{Row: 1, Column: 3}: SeatTypeVIP},
			},
			wantErrMsg: "invalid layout for cinema hall 6: seat type is defined for (1,3) which is outside of the hall",
		},
		{
			name: "should fail on an unknown seat type",
			layout: HallLayout{
				HallID:      7,
				Rows:        1,
				SeatsPerRow: []int{2},
				SeatTypes:   map[SeatPosition]SeatType{{Row: 1, Column: 2}: "BALCONY"},
			},
			wantErrMsg: `invalid layout for cinema hall 7: unknown seat type "BALCONY" at (1,2)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := BuildSourceSchema(tt.layout)

			if tt.wantErrMsg != "" {
				var cfgErr *ConfigurationError
				require.True(t, errors.As(err, &cfgErr), "expected a ConfigurationError, got %v", err)
				assert.Equal(t, tt.wantErrMsg, err.Error())
				assert.Equal(t, KindConfiguration, KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.layout.HallID, schema.HallID)

			diff := cmp.Diff(tt.want, schema.Seats)
			assert.Empty(t, diff, "schema mismatch (-want +got):\n%s", diff)
		})
	}
}

func TestBuildSourceSchemaIsDeterministic(t *testing.T) {
	layout := HallLayout{
		HallID:      1,
		Rows:        3,
		SeatsPerRow: []int{4, 5, 6},
		SeatTypes: map[SeatPosition]SeatType{
			{Row: 1, Column: 4}: SeatTypeRecliner,
			{Row: 3, Column: 1}: SeatTypeAccessible,
			{Row: 2, Column: 3}: SeatTypeVIP,
		},
	}

	first, err := BuildSourceSchema(layout)
	require.NoError(t, err)

	for range 10 {
		next, err := BuildSourceSchema(layout)
		require.NoError(t, err)

		diff := cmp.Diff(first, next, cmpopts.IgnoreUnexported(SourceBookingSchema{}))
		require.Empty(t, diff)
	}

	assert.Equal(t, 15, first.Len())
}

func TestSourceBookingSchemaLookup(t *testing.T) {
	seats := []SeatCoordinate{
		{Row: 1, Column: 1, SeatType: SeatTypeStandard},
		{Row: 1, Column: 2, SeatType: SeatTypeVIP},
	}

	indexed := NewSourceSchema(1, seats)
	literal := SourceBookingSchema{HallID: 1, Seats: seats}

	for _, schema := range []SourceBookingSchema{indexed, literal} {
		seatType, ok := schema.Lookup(SeatPosition{Row: 1, Column: 2})
		assert.True(t, ok)
		assert.Equal(t, SeatTypeVIP, seatType)

		_, ok = schema.Lookup(SeatPosition{Row: 2, Column: 1})
		assert.False(t, ok)
	}
}
