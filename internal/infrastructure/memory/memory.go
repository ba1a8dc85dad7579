// Package memory implementa los puertos de repositorio sobre tablas mock en
// memoria, con una latencia artificial por consulta que imita el retraso de
// red del backend real. Los datos semilla son estáticos; las lecturas
// devuelven copias para que el llamador no pueda mutar la semilla.
package memory

import (
	"context"
	"time"
)

// simulateLatency duerme la latencia configurada respetando la cancelación del
// contexto. Una consulta cancelada devuelve ctx.Err() de inmediato, sin
// reintentos ni backoff.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// mustDate convierte una fecha semilla YYYY-MM-DD. Solo para datos estáticos
// del paquete: un literal malformado es un bug de programación.
func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("memory: fecha semilla inválida: " + s)
	}
	return t
}
