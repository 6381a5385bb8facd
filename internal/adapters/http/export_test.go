package http

import (
	"context"
	"net"
	"time"
)

// ServeListener exposes serve so tests can bind an ephemeral port.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener, drain time.Duration) error {
	return s.serve(ctx, ln, drain)
}
