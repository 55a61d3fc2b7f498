package calendar

import (
	"errors"
	"testing"
	"time"
)

var utcSunday = Calendar{Location: time.UTC, FirstWeekday: time.Sunday}

func TestBuildMonthGrid_March2023LeadingBlanks(t *testing.T) {
	cells, err := utcSunday.BuildMonthGrid(nil, Month{2023, time.March})
	if err != nil {
		t.Fatalf("BuildMonthGrid: %v", err)
	}
	for i := 0; i < 3; i++ {
		if !cells[i].Blank {
			t.Errorf("cell %d should be blank", i)
		}
	}
	if cells[3].Blank {
		t.Fatal("cell 3 should be March 1")
	}
	if got := cells[3].Day.Key(); got != "2023-03-01" {
		t.Errorf("cell 3 = %s, want 2023-03-01", got)
	}
	if cells[0].Day.Key() != "2023-02-26" {
		t.Errorf("first blank = %s, want 2023-02-26", cells[0].Day.Key())
	}
}

func TestBuildMonthGrid_MondayStart(t *testing.T) {
	cal := Calendar{Location: time.UTC, FirstWeekday: time.Monday}
	cells, err := cal.BuildMonthGrid(nil, Month{2023, time.March})
	if err != nil {
		t.Fatalf("BuildMonthGrid: %v", err)
	}
	// Wednesday is column 2 when weeks start on Monday.
	if !cells[1].Blank || cells[2].Blank {
		t.Errorf("expected 2 leading blanks, got cells %+v %+v", cells[1], cells[2])
	}
}

func TestBuildMonthGrid_LengthMultipleOfSeven(t *testing.T) {
	for _, cal := range []Calendar{utcSunday, {Location: time.UTC, FirstWeekday: time.Monday}} {
		for year := 2023; year <= 2025; year++ {
			for m := time.January; m <= time.December; m++ {
				month := Month{year, m}
				cells, err := cal.BuildMonthGrid(nil, month)
				if err != nil {
					t.Fatalf("%s: %v", month, err)
				}
				if len(cells)%7 != 0 {
					t.Errorf("%s: len = %d, not a multiple of 7", month, len(cells))
				}

				var dayCells int
				for _, c := range cells {
					if !c.Blank {
						dayCells++
					}
				}
				if dayCells != month.Days() {
					t.Errorf("%s: %d day cells, want %d", month, dayCells, month.Days())
				}
			}
		}
	}
}

func TestBuildMonthGrid_DatesWithinWindow(t *testing.T) {
	month := Month{2024, time.February}
	first := month.First(time.UTC)
	lo := utcSunday.StartOfCalendarGrid(first)
	hi := utcSunday.EndOfMonth(first)

	cells, err := utcSunday.BuildMonthGrid(nil, month)
	if err != nil {
		t.Fatalf("BuildMonthGrid: %v", err)
	}
	// February 2024 starts on a Thursday and ends on a Thursday: 4 leading
	// and 2 trailing blanks.
	lead := utcSunday.WeekdayIndex(first)
	trailStart := lead + month.Days()
	if len(cells)-trailStart != 2 {
		t.Fatalf("trailing blanks = %d, want 2", len(cells)-trailStart)
	}
	for i, c := range cells {
		if i >= trailStart {
			if !c.Blank || c.Day != (StudyDay{}) {
				t.Errorf("trailing cell %d = %+v, want an undated blank", i, c)
			}
			continue
		}
		if c.Day.Date.IsZero() {
			t.Errorf("cell %d before the trailing padding has no date", i)
			continue
		}
		if c.Day.Date.Before(lo) || c.Day.Date.After(hi) {
			t.Errorf("cell %d date %s outside [%s, %s]", i, c.Day.Key(), lo.Format(DateLayout), hi.Format(DateLayout))
		}
	}
}

func TestBuildMonthGrid_MapsRecords(t *testing.T) {
	recs := []StudyDay{
		{Date: mustDate("2023-02-27"), DidStudy: true}, // padding range, not in March
		{Date: mustDate("2023-03-02"), DidStudy: true},
		{Date: mustDate("2023-03-31"), DidStudy: true},
	}
	cells, err := utcSunday.BuildMonthGrid(recs, Month{2023, time.March})
	if err != nil {
		t.Fatalf("BuildMonthGrid: %v", err)
	}

	studied := map[string]bool{}
	for _, c := range cells {
		if !c.Blank && c.Day.DidStudy {
			studied[c.Day.Key()] = true
		}
	}
	if len(studied) != 2 || !studied["2023-03-02"] || !studied["2023-03-31"] {
		t.Errorf("studied days = %v, want Mar 2 and Mar 31", studied)
	}
	if cells[1].Day.DidStudy {
		t.Error("padding cell should not carry study status")
	}
}

func TestBuildMonthGrid_InvalidMonth(t *testing.T) {
	_, err := BuildMonthGrid(nil, Month{2023, 13})
	if !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("err = %v, want ErrInvalidMonth", err)
	}
}

func TestWeeks(t *testing.T) {
	cells, err := utcSunday.BuildMonthGrid(nil, Month{2023, time.March})
	if err != nil {
		t.Fatalf("BuildMonthGrid: %v", err)
	}
	rows := Weeks(cells)
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	for i, r := range rows {
		if len(r) != 7 {
			t.Errorf("row %d has %d cells", i, len(r))
		}
	}
}
