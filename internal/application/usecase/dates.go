package usecase

import "time"

// dateLayout formato de fecha calendario usado en DTOs y filtros.
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
