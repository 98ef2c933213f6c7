package mcp

import (
	"errors"
	"fmt"
	"time"
)

var errToolNotFound = errors.New("tool not found")

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asInt(v interface{}) (int, bool) {
	// JSON numbers arrive as float64.
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// parseDateArg parses an optional YYYY-MM-DD tool argument. Absent arguments
// return the zero time; malformed ones are an error (a user typo, not a data
// quality issue).
func parseDateArg(args map[string]interface{}, name string) (time.Time, error) {
	raw := asString(args[name])
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, raw)
	}
	return t.UTC(), nil
}

// unavailable is the degraded-view payload: the view is skipped with a
// reason, sibling views stay fully functional.
func unavailable(reason string) map[string]interface{} {
	return map[string]interface{}{
		"available": false,
		"reason":    reason,
	}
}
