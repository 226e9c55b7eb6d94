package domain

import "context"

// CatalogDocument is the persisted form of the whole catalog: the single unit of
// durability, replaced in full on every mutating operation.
type CatalogDocument struct {
	Movies []MovieRecord `json:"movies"`
}

// MovieRecord serializes one screening with its booked seats flattened to a sorted
// list of identifiers.
type MovieRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Duration    string   `json:"duration"`
	Rating      string   `json:"rating"`
	Poster      string   `json:"poster"`
	Rows        int      `json:"rows"`
	Cols        int      `json:"cols"`
	BookedSeats []string `json:"booked_seats"`
}

// CatalogStore loads and replaces the catalog document atomically. Load returns an
// empty document when no prior document exists; that is not an error.
type CatalogStore interface {
	Load(ctx context.Context) (CatalogDocument, error)
	Save(ctx context.Context, doc CatalogDocument) error
}
