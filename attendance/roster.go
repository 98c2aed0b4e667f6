package attendance

import (
	"strings"

	"etix/models"
	"etix/types"
)

// FilterRoster filters the dashboard roster by attendance state and a
// free-text query over name, email and token. It is pure: the result is
// derivable from the roster alone.
func FilterRoster(records []models.AttendanceRecord, filter types.AttendanceFilter, query string) []models.AttendanceRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		switch filter {
		case types.FILTER_ATTENDED:
			if !r.IsAttended() {
				continue
			}
		case types.FILTER_NOT_ATTENDED:
			if r.IsAttended() {
				continue
			}
		}
		if q != "" && !matchesQuery(&r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r *models.AttendanceRecord, q string) bool {
	return strings.Contains(strings.ToLower(r.NamaPeserta), q) ||
		strings.Contains(strings.ToLower(r.EmailPeserta), q) ||
		strings.Contains(strings.ToLower(r.AttendanceToken), q)
}
