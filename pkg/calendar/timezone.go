package calendar

import (
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

// Map of common Windows timezone names to IANA timezone names
var windowsToIANA = map[string]string{
	"Pacific Standard Time":        "America/Los_Angeles",
	"Mountain Standard Time":       "America/Denver",
	"Central Standard Time":        "America/Chicago",
	"Eastern Standard Time":        "America/New_York",
	"Atlantic Standard Time":       "America/Halifax",
	"Alaskan Standard Time":        "America/Anchorage",
	"Hawaiian Standard Time":       "Pacific/Honolulu",
	"GMT Standard Time":            "Europe/London",
	"W. Europe Standard Time":      "Europe/Berlin",
	"Central Europe Standard Time": "Europe/Budapest",
	"Romance Standard Time":        "Europe/Paris",
	"China Standard Time":          "Asia/Shanghai",
	"Tokyo Standard Time":          "Asia/Tokyo",
	"Korea Standard Time":          "Asia/Seoul",
	"India Standard Time":          "Asia/Kolkata",
	"AUS Eastern Standard Time":    "Australia/Sydney",
}

// normalizeTimezones rewrites Windows TZIDs on the date properties of an
// imported component so go-ical can resolve them
func normalizeTimezones(comp *ical.Component) {
	for _, name := range []string{ical.PropDateTimeStart, ical.PropDateTimeEnd, ical.PropExceptionDates, ical.PropRecurrenceDates} {
		for i := range comp.Props[name] {
			prop := &comp.Props[name][i]
			if tzid := prop.Params.Get(ical.ParamTimezoneID); tzid != "" {
				if ianaName, ok := windowsToIANA[tzid]; ok {
					prop.Params.Set(ical.ParamTimezoneID, ianaName)
				}
			}
		}
	}
}

// locationOf picks the timezone a date property is expressed in
func locationOf(prop *ical.Prop) *time.Location {
	if tzid := prop.Params.Get(ical.ParamTimezoneID); tzid != "" {
		if ianaName, ok := windowsToIANA[tzid]; ok {
			tzid = ianaName
		}
		if loc, err := time.LoadLocation(tzid); err == nil {
			return loc
		}
	}
	if strings.HasSuffix(prop.Value, "Z") {
		return time.UTC
	}
	return time.Local
}
