package common

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ShutdownHook is a function executed after a termination signal is received
// but before the HTTP server begins its graceful shutdown. If a hook returns
// an error it will be logged; shutdown continues regardless.
type ShutdownHook func(ctx context.Context) error

// RunServerWithShutdown starts the provided *http.Server and blocks until a
// termination signal (SIGINT or SIGTERM) is received. It then runs any
// provided hooks (in order) with a context that shares the overall shutdown
// deadline, and finally gracefully shuts down the server.
func RunServerWithShutdown(server *http.Server, startupLog string, shutdownTimeout, hookTimeout time.Duration, hooks ...ShutdownHook) {
	if hookTimeout <= 0 {
		hookTimeout = 5 * time.Second
	}

	go func() {
		log.Printf("starting %s on %s", startupLog, server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("%s listen error: %v", startupLog, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Printf("shutdown signal received for %s", startupLog)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for i, h := range hooks {
		if h == nil {
			continue
		}
		hCtx, hCancel := context.WithTimeout(ctx, hookTimeout)
		if err := h(hCtx); err != nil {
			log.Printf("shutdown hook %d failed: %v", i, err)
		}
		hCancel()
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	} else {
		log.Printf("%s shutdown complete", startupLog)
	}
}
