package services

import "time"

// ValidateHoursEntry checks a daily hours entry before it is saved.
// Returns the list of problems; an empty list means the entry is valid.
func ValidateHoursEntry(entry DailyHoursEntry) []string {
	var errs []string

	if entry.WorkDate == "" {
		errs = append(errs, "Work date is required")
	} else if d, err := time.Parse("2006-01-02", entry.WorkDate); err != nil {
		errs = append(errs, "Work date must be YYYY-MM-DD")
	} else if d.After(endOfToday()) {
		errs = append(errs, "Cannot log hours for future dates")
	}

	totalHours := entry.HoursRegular + entry.HoursOvertime

	if totalHours == 0 && entry.Miles == 0 {
		errs = append(errs, "Must enter at least hours or miles")
	}
	if totalHours > 24 {
		errs = append(errs, "Total hours cannot exceed 24 hours per day")
	}
	if entry.HoursRegular < 0 || entry.HoursOvertime < 0 {
		errs = append(errs, "Hours cannot be negative")
	}
	if entry.Miles < 0 {
		errs = append(errs, "Miles cannot be negative")
	}
	if entry.MaterialCost < 0 {
		errs = append(errs, "Material cost cannot be negative")
	}

	return errs
}

func endOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
}
