package calendar

import "time"

// StreakInfo holds current and longest study streaks.
type StreakInfo struct {
	Current int
	Longest int
}

// ComputeStreak returns the number of consecutive studied days ending at
// today. days must be sorted ascending by date without duplicates.
//
// Days after today are ignored. Walking back from the newest remaining day,
// each studied day adds one. An unstudied today is skipped so the streak
// survives until the day is over; any other unstudied day ends the count.
// A date with no record between two records counts as unstudied.
func ComputeStreak(days []StudyDay, today time.Time) int {
	todayN := dayNumber(today)

	i := len(days) - 1
	for i >= 0 && dayNumber(days[i].Date) > todayN {
		i--
	}
	if i < 0 {
		return 0
	}

	streak := 0
	want := todayN
	for i >= 0 {
		n := dayNumber(days[i].Date)
		switch {
		case n > want:
			// Out of order or duplicate; already accounted for.
			i--
		case n < want:
			// No record for want.
			if want != todayN {
				return streak
			}
			want--
		case days[i].DidStudy:
			streak++
			want--
			i--
		case n == todayN:
			want--
			i--
		default:
			return streak
		}
	}
	return streak
}

// LongestStreak returns the longest run of consecutive studied days on or
// before today. days must be sorted ascending by date.
func LongestStreak(days []StudyDay, today time.Time) int {
	todayN := dayNumber(today)

	longest, run := 0, 0
	var prev int64
	for _, d := range days {
		n := dayNumber(d.Date)
		if n > todayN {
			break
		}
		if !d.DidStudy {
			run = 0
			continue
		}
		if run > 0 && n == prev+1 {
			run++
		} else {
			run = 1
		}
		prev = n
		longest = max(longest, run)
	}
	return longest
}

// Streaks computes both the current and the longest streak.
func Streaks(days []StudyDay, today time.Time) StreakInfo {
	info := StreakInfo{
		Current: ComputeStreak(days, today),
		Longest: LongestStreak(days, today),
	}
	info.Longest = max(info.Longest, info.Current)
	return info
}
