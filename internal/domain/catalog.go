package domain

import "sync"

// Catalog is the in-memory collection of screenings and their seat inventories.
// Screenings keep insertion order, which is also display order. Each screening owns
// exactly one inventory, created empty alongside it (or restored from a persisted
// document) and discarded when the screening is removed.
type Catalog struct {
	mu          sync.RWMutex
	order       []string
	screenings  map[string]Screening
	inventories map[string]*SeatInventory
}

func NewCatalog() *Catalog {
	return &Catalog{
		screenings:  make(map[string]Screening),
		inventories: make(map[string]*SeatInventory),
	}
}

// NewCatalogFromDocument rebuilds the catalog from its persisted form.
func NewCatalogFromDocument(doc CatalogDocument) *Catalog {
	catalog := NewCatalog()

	for _, record := range doc.Movies {
		screening := Screening{
			ID:        record.ID,
			Title:     record.Title,
			Genre:     record.Genre,
			Duration:  record.Duration,
			Rating:    record.Rating,
			PosterURL: record.Poster,
			Rows:      record.Rows,
			Cols:      record.Cols,
		}

		if err := catalog.Add(screening); err != nil {
			continue
		}

		catalog.inventories[screening.ID].restore(record.BookedSeats)
	}

	return catalog
}

func (c *Catalog) Add(screening Screening) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.screenings[screening.ID]; ok {
		return ErrDuplicateScreening
	}

	c.order = append(c.order, screening.ID)
	c.screenings[screening.ID] = screening
	c.inventories[screening.ID] = NewSeatInventory(screening)

	return nil
}

func (c *Catalog) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.screenings[id]; !ok {
		return ErrScreeningNotFound
	}

	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	delete(c.screenings, id)
	delete(c.inventories, id)

	return nil
}

func (c *Catalog) Get(id string) (Screening, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	screening, ok := c.screenings[id]
	if !ok {
		return Screening{}, ErrScreeningNotFound
	}

	return screening, nil
}

// List returns the screenings in insertion order.
func (c *Catalog) List() []Screening {
	c.mu.RLock()
	defer c.mu.RUnlock()

	screenings := make([]Screening, 0, len(c.order))
	for _, id := range c.order {
		screenings = append(screenings, c.screenings[id])
	}

	return screenings
}

func (c *Catalog) Inventory(id string) (*SeatInventory, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	inventory, ok := c.inventories[id]
	if !ok {
		return nil, ErrScreeningNotFound
	}

	return inventory, nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// Snapshot captures the catalog in its persisted form.
func (c *Catalog) Snapshot() CatalogDocument {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc := CatalogDocument{Movies: make([]MovieRecord, 0, len(c.order))}

	for _, id := range c.order {
		screening := c.screenings[id]

		doc.Movies = append(doc.Movies, MovieRecord{
			ID:          screening.ID,
			Title:       screening.Title,
			Genre:       screening.Genre,
			Duration:    screening.Duration,
			Rating:      screening.Rating,
			Poster:      screening.PosterURL,
			Rows:        screening.Rows,
			Cols:        screening.Cols,
			BookedSeats: c.inventories[id].BookedSeats(),
		})
	}

	return doc
}
