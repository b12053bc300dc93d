package placeholders

import "time"

// DateTimeFormat is the datetime layout the upstream API expects for
// fromDateTime/toDateTime values.
const DateTimeFormat = "2006-01-02T15:04:05Z"

func (s *Service) resolveNow() (time.Time, error) {
	return s.now().UTC(), nil
}

func (s *Service) resolveToday() (time.Time, error) {
	return s.now().UTC().Truncate(24 * time.Hour), nil
}
