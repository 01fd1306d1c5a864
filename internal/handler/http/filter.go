package http

import (
	"net/http"
	"strconv"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
)

// filterFromQuery reads the shared dashboard filters from query params:
// from/to (YYYY-MM-DD), employee (repeatable) and status.
func filterFromQuery(r *http.Request) duty.Filter {
	q := r.URL.Query()
	return duty.Filter{
		From:      q.Get("from"),
		To:        q.Get("to"),
		Employees: q["employee"],
		Status:    q.Get("status"),
	}
}

func intQuery(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
