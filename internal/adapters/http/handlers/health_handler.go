package handlers

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

// checkOK is reported for a passing dependency check and for liveness.
const checkOK = "ok"

type readinessReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness answers 200 whenever the process can serve HTTP at all.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": checkOK})
}

// Readiness runs every registered check. Any failure turns the answer into
// a 503 listing each check's error text.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	report := readinessReport{
		Status: "ready",
		Checks: lo.MapValues(results, func(err error, _ string) string {
			if err != nil {
				return err.Error()
			}
			return checkOK
		}),
	}
	code := http.StatusOK
	if lo.SomeBy(lo.Values(results), func(err error) bool { return err != nil }) {
		report.Status, code = "not_ready", http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, report)
}
