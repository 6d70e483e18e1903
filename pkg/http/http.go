package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// ShutdownTimeout bounds the graceful shutdown of servers
// started with [ListenAndServe].
var ShutdownTimeout = 5 * time.Second

type Decoder interface {
	Decode(dst any, src map[string][]string) error
}

// ListenAndServe runs the server until ctx is done
// and then shuts it down gracefully.
// The closers run once the server stopped serving requests,
// their errors are joined to the returned error.
// It returns nil after a clean shutdown.
func ListenAndServe(ctx context.Context, server *http.Server, closers ...func() error) (err error) {
	defer func() {
		for _, closer := range closers {
			err = errors.Join(err, closer())
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
