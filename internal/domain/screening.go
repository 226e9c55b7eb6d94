package domain

import (
	"strconv"
)

// Screening is a single showing of a title. Metadata fields are opaque to the
// engine; only the seat-map geometry (Rows x Cols) carries behavior.
type Screening struct {
	ID        string
	Title     string
	Genre     string
	Duration  string
	Rating    string
	PosterURL string
	Rows      int
	Cols      int
}

// Row letters are single characters, so a seat map never exceeds 26 rows.
const (
	MaxRows = 26
	MaxCols = 100
)

func (s Screening) SeatCount() int {
	return s.Rows * s.Cols
}

// SeatIDs enumerates every seat identifier of the screening in row-major order.
func (s Screening) SeatIDs() []string {
	ids := make([]string, 0, s.SeatCount())

	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			ids = append(ids, SeatID(r, c))
		}
	}

	return ids
}

// ValidSeat reports whether id addresses a seat within the screening's geometry.
func (s Screening) ValidSeat(id string) bool {
	if len(id) < 2 {
		return false
	}

	row := int(id[0] - 'A')
	if row < 0 || row >= s.Rows {
		return false
	}

	col, err := strconv.Atoi(id[1:])
	if err != nil || col < 1 || col > s.Cols {
		return false
	}

	// Rejects non-canonical spellings such as "A01".
	return SeatID(row, col-1) == id
}

// SeatID derives the identifier for a zero-based row and column: row 0, col 0 -> "A1".
func SeatID(row, col int) string {
	return string(rune('A'+row)) + strconv.Itoa(col+1)
}
