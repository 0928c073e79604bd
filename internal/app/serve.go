package app

import (
	"context"
	"errors"
	"time"
)

// shutdownTimeout tiempo máximo para cerrar las peticiones en curso.
const shutdownTimeout = 10 * time.Second

// Serve sirve HTTP hasta que ctx se cancele (señal de apagado) o el listener falle.
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", a.cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		errCh <- a.Listen()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		a.log.Error().Err(err).Msg("apagado del servidor")
		return err
	}
	a.log.Info().Msg("aplicación detenida")
	return nil
}
