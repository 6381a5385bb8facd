package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/logging"
)

// bodyLimit caps form submissions at 1 MiB.
const bodyLimit = 1 << 20

func invalidField(name, msg string) error {
	return &domain.ValidationError{Fields: map[string]string{name: msg}}
}

func atoi64(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidField(name, "must be a valid integer")
	}
	return id, nil
}

// parseID reads the {param} segment of the matched route.
func parseID(r *http.Request, param string) (int64, error) {
	return atoi64(param, chi.URLParam(r, param))
}

// queryID reads ?id=. ok is false when the parameter is absent.
func queryID(r *http.Request) (id int64, ok bool, err error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, false, nil
	}
	id, err = atoi64("id", raw)
	return id, err == nil, err
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("encoding response", "error", err)
	}
}

// decodeAndValidate reads a size-limited JSON body into dst and runs its
// Validate method. It answers the request itself and returns false when
// either step fails.
func decodeAndValidate[T interface{ Validate() error }](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, bodyLimit)).Decode(dst)
	if err != nil {
		err = invalidField("body", "invalid JSON")
	} else {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
