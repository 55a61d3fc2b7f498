package cmd

import (
	"fmt"

	"github.com/rnwolfe/studycal/internal/calendar"
	"github.com/rnwolfe/studycal/internal/config"
	"github.com/rnwolfe/studycal/internal/days"
	"github.com/rnwolfe/studycal/internal/store"
)

// session bundles what most commands need: config, the resolved calendar,
// and the day store over an open database.
type session struct {
	cfg  *config.Config
	cal  calendar.Calendar
	db   *store.DB
	days *days.Store
}

func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cal, err := cfg.Calendar.Calendar()
	if err != nil {
		return nil, fmt.Errorf("calendar config: %w", err)
	}
	db, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return &session{
		cfg:  cfg,
		cal:  cal,
		db:   db,
		days: days.NewStore(db.Conn(), cal.Location),
	}, nil
}

func (s *session) Close() error {
	return s.db.Close()
}
