package diagnostics

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/oklog/ulid/v2"

	"github.com/ziadkadry99/learnhub/internal/db"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// timeFormat is fixed-width so stored timestamps compare correctly as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// Store persists diagnostic events in SQLite. Event ids are ULIDs, so id order
// is recording order.
type Store struct {
	db    *db.DB
	clock clockwork.Clock

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB, clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		db:      database,
		clock:   clock,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (s *Store) newID(now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(now), s.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Record inserts a new event.
func (s *Store) Record(ctx context.Context, kind Kind, subject, detail string) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown diagnostic kind %q", kind)
	}
	now := s.clock.Now().UTC()
	id, err := s.newID(now)
	if err != nil {
		return fmt.Errorf("generating event id: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO diagnostic_events (id, kind, subject, detail, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, string(kind), subject, detail, now.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting diagnostic event: %w", err)
	}
	return nil
}

// Filter controls which events List returns.
type Filter struct {
	Kind  Kind
	Limit int
}

// List returns matching events, newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]Event, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(filter.Kind))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	query := "SELECT id, kind, subject, detail, created_at FROM diagnostic_events"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT %d", limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying diagnostic events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Summary counts events per kind. Every known kind is present in the result.
func (s *Store) Summary(ctx context.Context) (map[Kind]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT kind, COUNT(*) FROM diagnostic_events GROUP BY kind")
	if err != nil {
		return nil, fmt.Errorf("summarising diagnostic events: %w", err)
	}
	defer rows.Close()

	counts := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = 0
	}
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		counts[Kind(kind)] = n
	}
	return counts, rows.Err()
}

// DeleteBefore removes events recorded before the given time and returns how
// many were removed.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM diagnostic_events WHERE created_at < ?",
		before.UTC().Format(timeFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old diagnostic events: %w", err)
	}
	return res.RowsAffected()
}

func scanEvent(rows *sql.Rows) (Event, error) {
	var (
		e       Event
		kind    string
		created string
	)
	if err := rows.Scan(&e.ID, &kind, &e.Subject, &e.Detail, &created); err != nil {
		return Event{}, fmt.Errorf("scanning diagnostic event: %w", err)
	}
	e.Kind = Kind(kind)
	if t, err := time.Parse(timeFormat, created); err == nil {
		e.CreatedAt = t
	}
	return e, nil
}
