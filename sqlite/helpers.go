package sqlite

import (
	"time"

	"github.com/fwojciec/hoverdoc"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string. A failure is
// reported as EINVALID so callers treat the record as corrupt, not absent.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, hoverdoc.Errorf(hoverdoc.EINVALID, "corrupt %s in cache record: %v", fieldName, err)
	}
	return t, nil
}
