// Package days persists one study record per calendar date in SQLite.
package days

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rnwolfe/studycal/internal/calendar"
)

// Store is the day record store backed by the study_days table.
type Store struct {
	db  *sql.DB
	loc *time.Location
}

var _ calendar.Fetcher = (*Store)(nil)

// NewStore creates a store whose dates are interpreted in loc. Dates passed
// in are read as calendar dates in their own location.
func NewStore(db *sql.DB, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{db: db, loc: loc}
}

func (s *Store) key(t time.Time) string {
	return t.Format(calendar.DateLayout)
}

func (s *Store) parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(calendar.DateLayout, key, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad stored date %q: %w", key, err)
	}
	return t, nil
}

// Fetch returns the records dated within [from, to], ascending. A zero from
// means no lower bound.
func (s *Store) Fetch(from, to time.Time) ([]calendar.StudyDay, error) {
	lo := ""
	if !from.IsZero() {
		lo = s.key(from)
	}
	rows, err := s.db.Query(
		`SELECT date, did_study FROM study_days
		 WHERE date >= ? AND date <= ? ORDER BY date ASC`,
		lo, s.key(to),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching study days: %w", err)
	}
	defer rows.Close()

	var out []calendar.StudyDay
	for rows.Next() {
		var key string
		var studied int
		if err := rows.Scan(&key, &studied); err != nil {
			return nil, fmt.Errorf("scanning study day: %w", err)
		}
		date, err := s.parse(key)
		if err != nil {
			return nil, err
		}
		out = append(out, calendar.StudyDay{Date: date, DidStudy: studied == 1})
	}
	return out, rows.Err()
}

// Get returns the record for date. ok is false when no row exists.
func (s *Store) Get(date time.Time) (day calendar.StudyDay, ok bool, err error) {
	if date.IsZero() {
		return calendar.StudyDay{}, false, calendar.ErrMissingDate
	}
	var studied int
	err = s.db.QueryRow(
		`SELECT did_study FROM study_days WHERE date = ?`, s.key(date),
	).Scan(&studied)
	if err == sql.ErrNoRows {
		return calendar.StudyDay{}, false, nil
	}
	if err != nil {
		return calendar.StudyDay{}, false, fmt.Errorf("getting %s: %w", s.key(date), err)
	}
	day, err = calendar.NewStudyDay(date, studied == 1)
	if err != nil {
		return calendar.StudyDay{}, false, err
	}
	return day, true, nil
}

// EnsureMonth creates an unstudied record for every date of month that does
// not have one yet. Returns how many rows were created.
func (s *Store) EnsureMonth(month calendar.Month) (int, error) {
	if !month.Valid() {
		return 0, fmt.Errorf("%w: %s", calendar.ErrInvalidMonth, month)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO study_days (date, id, did_study) VALUES (?, ?, 0)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	created := 0
	first := month.First(s.loc)
	for i := 0; i < month.Days(); i++ {
		res, err := stmt.Exec(s.key(first.AddDate(0, 0, i)), uuid.NewString())
		if err != nil {
			return 0, fmt.Errorf("creating days for %s: %w", month, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("creating days for %s: %w", month, err)
		}
		created += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

// Set records whether the user studied on date, creating the row if needed.
func (s *Store) Set(date time.Time, didStudy bool) error {
	if date.IsZero() {
		return calendar.ErrMissingDate
	}
	_, err := s.db.Exec(
		`INSERT INTO study_days (date, id, did_study) VALUES (?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   did_study = excluded.did_study,
		   updated_at = CURRENT_TIMESTAMP`,
		s.key(date), uuid.NewString(), boolInt(didStudy),
	)
	if err != nil {
		return fmt.Errorf("setting %s: %w", s.key(date), err)
	}
	return nil
}

// Toggle flips the study status of date and returns the new value. A date
// without a record becomes studied.
func (s *Store) Toggle(date time.Time) (bool, error) {
	if date.IsZero() {
		return false, calendar.ErrMissingDate
	}
	var studied int
	err := s.db.QueryRow(
		`INSERT INTO study_days (date, id, did_study) VALUES (?, ?, 1)
		 ON CONFLICT(date) DO UPDATE SET
		   did_study = 1 - study_days.did_study,
		   updated_at = CURRENT_TIMESTAMP
		 RETURNING did_study`,
		s.key(date), uuid.NewString(),
	).Scan(&studied)
	if err != nil {
		return false, fmt.Errorf("toggling %s: %w", s.key(date), err)
	}
	return studied == 1, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
