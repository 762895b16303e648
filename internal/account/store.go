package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"daycare/internal/pet"
)

var (
	// ErrNotFound is returned when no pet matches a reference.
	ErrNotFound = errors.New("pet not found")

	// ErrAmbiguous is returned when a name matches more than one pet.
	ErrAmbiguous = errors.New("ambiguous pet name")

	// ErrInvalidInput is returned for a record that cannot be stored.
	ErrInvalidInput = errors.New("invalid input")
)

// idWidth is the zero-padded width of a pet ID.
const idWidth = 5

// Store persists pet profiles.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens the pet database at path, creating it if needed.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create adds a pet with the next sequential ID and the lowest status.
func (s *Store) Create(ctx context.Context, name, species, animalID string) (pet.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return pet.Profile{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return pet.Profile{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var last sql.NullString
	if err := tx.QueryRowContext(ctx, `SELECT MAX(id) FROM pets`).Scan(&last); err != nil {
		return pet.Profile{}, err
	}
	next := 1
	if last.Valid {
		n, err := strconv.Atoi(last.String)
		if err != nil {
			return pet.Profile{}, fmt.Errorf("unexpected pet id %q: %w", last.String, err)
		}
		next = n + 1
	}

	p := pet.Profile{
		ID:       fmt.Sprintf("%0*d", idWidth, next),
		Name:     name,
		Species:  strings.TrimSpace(species),
		AnimalID: strings.TrimSpace(animalID),
		Status:   pet.MinStatus,
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO pets (id, name, species, animal_id, status, event_flag, event_delta) VALUES (?, ?, ?, ?, ?, 0, 0)`,
		p.ID, p.Name, p.Species, p.AnimalID, p.Status)
	if err != nil {
		return pet.Profile{}, err
	}
	if err := tx.Commit(); err != nil {
		return pet.Profile{}, err
	}

	s.logger.Debug("created pet", "pet", p.ID, "name", p.Name)
	return p, nil
}

// Get returns the pet with id.
func (s *Store) Get(ctx context.Context, id string) (pet.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, species, animal_id, status, event_flag, event_delta FROM pets WHERE id = ?`, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pet.Profile{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, err
}

// List returns every pet in ID order.
func (s *Store) List(ctx context.Context) ([]pet.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, species, animal_id, status, event_flag, event_delta FROM pets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pets []pet.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

// Resolve finds a pet by exact ID, or by name (case-insensitive, trimmed).
func (s *Store) Resolve(ctx context.Context, ref string) (pet.Profile, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return pet.Profile{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	p, err := s.Get(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return pet.Profile{}, err
	}

	pets, err := s.List(ctx)
	if err != nil {
		return pet.Profile{}, err
	}

	refLower := strings.ToLower(ref)
	var matches []pet.Profile
	for _, p := range pets {
		if strings.ToLower(strings.TrimSpace(p.Name)) == refLower {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return pet.Profile{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return pet.Profile{}, fmt.Errorf("%w: %s", ErrAmbiguous, ref)
	}
}

// SavePetRecord writes the mutable fields of p (name, cached status and
// event state) back to the database.
func (s *Store) SavePetRecord(ctx context.Context, p pet.Profile) error {
	if p.Status < pet.MinStatus || p.Status > pet.MaxStatus {
		return fmt.Errorf("%w: status %d", ErrInvalidInput, p.Status)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE pets SET name = ?, species = ?, animal_id = ?, status = ?, event_flag = ?, event_delta = ? WHERE id = ?`,
		p.Name, p.Species, p.AnimalID, p.Status, p.EventFlag, p.EventDelta, p.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}

	s.logger.Debug("saved pet record", "pet", p.ID, "status", p.Status, "event", p.EventFlag)
	return nil
}

// Delete removes the pet record. Its tasks are the caller's concern.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.logger.Debug("deleted pet", "pet", id)
	return nil
}

// ResetEvents starts a new cycle: every pet's event becomes unresolved and
// its event outcome is cleared. Returns the number of pets reset.
func (s *Store) ResetEvents(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE pets SET event_flag = 0, event_delta = 0 WHERE event_flag != 0 OR event_delta != 0`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	s.logger.Debug("reset events", "pets", n)
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (pet.Profile, error) {
	var p pet.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Species, &p.AnimalID, &p.Status, &p.EventFlag, &p.EventDelta)
	return p, err
}
