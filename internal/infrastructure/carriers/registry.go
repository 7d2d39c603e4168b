package carriers

import (
	"fmt"
	"strings"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/internal/usecase/interfaces"
)

// Registry is the static carrier table built once at startup.
type Registry struct {
	order    []string
	adapters map[string]interfaces.ICarrierAdapter
}

var _ interfaces.ICarrierRegistry = (*Registry)(nil)

// NewRegistry keys adapters by their lower-cased name, in the order given.
func NewRegistry(adapters ...interfaces.ICarrierAdapter) (*Registry, error) {
	r := &Registry{adapters: make(map[string]interfaces.ICarrierAdapter, len(adapters))}
	for _, a := range adapters {
		key := normalize(a.Name())
		if key == "" {
			return nil, fmt.Errorf("carrier adapter without a name")
		}
		if _, dup := r.adapters[key]; dup {
			return nil, fmt.Errorf("carrier %q registered twice", key)
		}
		r.adapters[key] = a
		r.order = append(r.order, key)
	}
	return r, nil
}

func (r *Registry) Resolve(carrier string) (interfaces.ICarrierAdapter, error) {
	if a, ok := r.adapters[normalize(carrier)]; ok {
		return a, nil
	}
	return nil, &domainerr.UnsupportedCarrierError{Carrier: carrier}
}

func (r *Registry) ListSupported() []string {
	return append([]string(nil), r.order...)
}

func normalize(carrier string) string {
	return strings.ToLower(strings.TrimSpace(carrier))
}
