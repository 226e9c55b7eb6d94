package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatID(t *testing.T) {
	assert.Equal(t, "A1", SeatID(0, 0))
	assert.Equal(t, "A12", SeatID(0, 11))
	assert.Equal(t, "B1", SeatID(1, 0))
	assert.Equal(t, "Z100", SeatID(25, 99))
}

func TestSeatIDs(t *testing.T) {
	seatIDPattern := regexp.MustCompile(`^[A-Z][1-9][0-9]*$`)

	tests := []struct {
		name string
		rows int
		cols int
	}{
		{"single seat", 1, 1},
		{"two by two", 2, 2},
		{"wide room", 3, 12},
		{"largest geometry", 26, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screening := Screening{ID: "scr", Rows: tt.rows, Cols: tt.cols}

			ids := screening.SeatIDs()
			require.Len(t, ids, tt.rows*tt.cols)

			seen := make(map[string]bool, len(ids))
			for _, id := range ids {
				assert.Regexp(t, seatIDPattern, id)
				assert.False(t, seen[id], "duplicate seat id %s", id)
				seen[id] = true

				assert.True(t, screening.ValidSeat(id))
			}
		})
	}
}

func TestSeatIDsRowMajorOrder(t *testing.T) {
	screening := Screening{ID: "scr", Rows: 2, Cols: 2}

	assert.Equal(t, []string{"A1", "A2", "B1", "B2"}, screening.SeatIDs())
}

func TestValidSeat(t *testing.T) {
	screening := Screening{ID: "scr", Rows: 2, Cols: 12}

	valid := []string{"A1", "A12", "B1", "B12"}
	for _, id := range valid {
		assert.True(t, screening.ValidSeat(id), "expected %s to be valid", id)
	}

	invalid := []string{"", "A", "1", "a1", "A0", "A01", "A13", "C1", "AA1", "B-1", "B 1"}
	for _, id := range invalid {
		assert.False(t, screening.ValidSeat(id), "expected %s to be invalid", id)
	}
}

func TestSeatCount(t *testing.T) {
	screening := Screening{Rows: 10, Cols: 12}

	assert.Equal(t, 120, screening.SeatCount())
}
