package heuristic

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/artem13815/resume-profiler/pkg/profile"
)

var monthYearRe = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{4})`)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// durationYears вычисляет длительность одной записи опыта в годах.
// Открытые диапазоны ("present"/"current") считаются до текущего момента.
func durationYears(duration string, now time.Time) float64 {
	matches := monthYearRe.FindAllStringSubmatch(duration, -1)
	if len(matches) == 0 {
		return 0
	}
	start := monthYear(matches[0], now)
	var end time.Time
	switch {
	case len(matches) >= 2:
		end = monthYear(matches[1], now)
	case strings.Contains(strings.ToLower(duration), "present"),
		strings.Contains(strings.ToLower(duration), "current"):
		end = now
	default:
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return end.Sub(start).Hours() / (24 * 365.25)
}

func monthYear(m []string, now time.Time) time.Time {
	mon := monthIndex[strings.ToLower(m[1])]
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return now
	}
	return time.Date(year, mon, 1, 0, 0, 0, 0, time.UTC)
}

// buildMetadata агрегирует производные поля: суммарный стаж по диапазонам дат,
// текущая роль/компания (запись с открытым диапазоном, иначе первая) и локация.
func buildMetadata(p *profile.Profile, now time.Time) profile.Metadata {
	md := profile.Metadata{Location: p.Identity.Address}

	var total float64
	for _, e := range p.Experience {
		total += durationYears(e.Duration, now)
	}
	md.TotalExperienceYears = math.Round(total*10) / 10

	for _, e := range p.Experience {
		lower := strings.ToLower(e.Duration)
		if strings.Contains(lower, "present") || strings.Contains(lower, "current") {
			md.CurrentRole = e.Position
			md.CurrentCompany = e.Company
			return md
		}
	}
	if len(p.Experience) > 0 {
		md.CurrentRole = p.Experience[0].Position
		md.CurrentCompany = p.Experience[0].Company
	}
	return md
}
