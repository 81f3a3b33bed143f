package appmode

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/leetie/minigrep/internal/processor"
	"github.com/leetie/minigrep/internal/transport"
)

const shutdownTimeout = 5 * time.Second

// RunServer serves search requests on addr until ctx is cancelled.
func RunServer(ctx context.Context, stop context.CancelFunc, addr string) error {
	// получить экземпляр сервера
	srv := transport.NewServer(addr, processor.Processor{})

	// запуск сервера
	srvErr := make(chan error, 1)
	go func() {
		log.Printf("minigrep serving on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server stopped: %v", err)
			srvErr <- err
			stop()
			return
		}
		log.Println("Server gracefully stopping...")
	}()

	<-ctx.Done()

	select {
	case err := <-srvErr:
		return err
	default:
	}

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server %q correctly: %q", addr, err.Error())
		return err
	}
	log.Printf("Server %q is closed.", addr)
	return nil
}
