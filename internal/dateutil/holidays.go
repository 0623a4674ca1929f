package dateutil

import "time"

// holidays is the fixed national holiday table, keyed by YYYY-MM-DD.
// It covers the Taiwan government calendar for 2025 and 2026, including
// make-up days off. Dates outside the covered years simply never match.
var holidays = map[string]bool{
	// 2025
	"2025-01-01": true, // New Year's Day
	"2025-01-27": true, // Lunar New Year (adjusted day off)
	"2025-01-28": true, // Lunar New Year's Eve
	"2025-01-29": true, // Lunar New Year
	"2025-01-30": true, // Lunar New Year
	"2025-01-31": true, // Lunar New Year
	"2025-02-28": true, // Peace Memorial Day
	"2025-04-03": true, // Children's Day (adjusted day off)
	"2025-04-04": true, // Children's Day / Tomb Sweeping Day
	"2025-05-01": true, // Labor Day
	"2025-05-30": true, // Dragon Boat Festival (adjusted day off)
	"2025-09-29": true, // Confucius' Birthday (adjusted day off)
	"2025-10-06": true, // Mid-Autumn Festival
	"2025-10-10": true, // National Day
	"2025-10-24": true, // Taiwan Retrocession Day (adjusted day off)
	"2025-12-25": true, // Constitution Day

	// 2026
	"2026-01-01": true, // New Year's Day
	"2026-02-16": true, // Lunar New Year's Eve
	"2026-02-17": true, // Lunar New Year
	"2026-02-18": true, // Lunar New Year
	"2026-02-19": true, // Lunar New Year
	"2026-02-20": true, // Lunar New Year (adjusted day off)
	"2026-02-27": true, // Peace Memorial Day (adjusted day off)
	"2026-04-03": true, // Children's Day (adjusted day off)
	"2026-04-06": true, // Tomb Sweeping Day (adjusted day off)
	"2026-05-01": true, // Labor Day
	"2026-06-19": true, // Dragon Boat Festival
	"2026-09-25": true, // Mid-Autumn Festival
	"2026-09-28": true, // Confucius' Birthday
	"2026-10-09": true, // National Day (adjusted day off)
	"2026-10-26": true, // Taiwan Retrocession Day (adjusted day off)
	"2026-12-25": true, // Constitution Day
}

// IsHoliday reports whether the date is in the fixed holiday table.
func IsHoliday(t time.Time) bool {
	return holidays[t.Format(DateFormat)]
}
