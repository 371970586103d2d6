package anilist

import "time"

// Season names one of the four official anime broadcast seasons.
type Season string

const (
	SeasonWinter Season = "WINTER"
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonFall   Season = "FALL"
)

// CurrentSeason maps an instant to its broadcast season and year: WINTER
// covers January through March, SPRING April through June, SUMMER July
// through September, FALL October through December. The year is always the
// calendar year of t; a December FALL season spilling into January is not
// adjusted.
func CurrentSeason(t time.Time) (Season, int) {
	var season Season
	switch month := t.Month(); {
	case month >= time.January && month <= time.March:
		season = SeasonWinter
	case month >= time.April && month <= time.June:
		season = SeasonSpring
	case month >= time.July && month <= time.September:
		season = SeasonSummer
	default:
		season = SeasonFall
	}
	return season, t.Year()
}
