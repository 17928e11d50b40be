package timezone

import (
	"hotel/config"
	"hotel/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}

// ParseDate parses a YYYY-MM-DD calendar date. Dates carry no zone, so the
// result is midnight UTC regardless of the application timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateOnlyFormat, value, time.UTC)
}

// FormatDate renders the calendar date part of t as YYYY-MM-DD without
// shifting it into the application timezone.
func FormatDate(t time.Time) string {
	return t.Format(constant.DateOnlyFormat)
}
