package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Root       string         `json:"root"`
	ClientType string         `json:"client_type"`
	Calls      map[string]int `json:"calls"`
	Failures   int            `json:"failures"`
	LastError  string         `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clientType := "unknown"
	if s.client != nil {
		clientType = "client"
		if comp, ok := s.client.(introspection.Component); ok {
			clientType = comp.ComponentType()
		}
	}

	calls := make(map[string]int, len(s.calls))
	for op, n := range s.calls {
		calls[op] = n
	}

	return ServiceState{
		Root:       RootDir,
		ClientType: clientType,
		Calls:      calls,
		Failures:   s.failures,
		LastError:  s.lastErr,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
