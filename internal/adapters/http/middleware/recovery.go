package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sellerdesk/internal/domain"
)

var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and, if nothing
// has been written yet, an RFC 9457 500. The panic value never reaches the
// client. http.ErrAbortHandler is re-panicked so net/http can drop the
// connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), panicMessage(v),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errInternalServer)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

func panicMessage(v any) string {
	if err, ok := v.(error); ok && errors.Is(err, domain.ErrPrecondition) {
		return "form used before it was configured"
	}
	return "panic recovered"
}
