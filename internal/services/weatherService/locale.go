package weatherservice

import (
	"fmt"
	"time"
)

// Short weekday names, indexed by time.Weekday.
var weekdayAbbrev = map[string][7]string{
	"fr": {"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	"en": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	"de": {"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	"es": {"dom.", "lun.", "mar.", "mié.", "jue.", "vie.", "sáb."},
}

// SupportedLocale reports whether dates can be rendered in the given locale.
func SupportedLocale(locale string) bool {
	_, ok := weekdayAbbrev[locale]
	return ok
}

// formatDate renders t as "EEE dd/MM HH:mm" in the given locale.
func formatDate(t time.Time, locale string) string {
	names, ok := weekdayAbbrev[locale]
	if !ok {
		names = weekdayAbbrev["en"]
	}
	return fmt.Sprintf("%s %s", names[t.Weekday()], t.Format("02/01 15:04"))
}
