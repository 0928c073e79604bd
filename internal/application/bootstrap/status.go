package bootstrap

import "sync"

// Status guarda el último resultado de la carga inicial para la señal de readiness.
// Se escribe al arrancar y se lee desde los handlers HTTP.
type Status struct {
	mu   sync.RWMutex
	last *Result
}

// NewStatus crea un Status sin resultado (no listo).
func NewStatus() *Status {
	return &Status{}
}

// Record reemplaza el último resultado.
func (s *Status) Record(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := res
	s.last = &r
}

// Last devuelve el último resultado y si existe.
func (s *Status) Last() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

// Ready es true cuando la última carga dejó la base utilizable.
func (s *Status) Ready() bool {
	res, ok := s.Last()
	if !ok {
		return false
	}
	switch res.Outcome {
	case OutcomeSeeded, OutcomePartial, OutcomeSkipped, OutcomeDisabled:
		return true
	}
	return false
}
