package core

import (
	"fmt"
	"sync"
)

// Serializer renders export input in one output dialect.
type Serializer interface {
	Format() Format
	Serialize(in SerializeInput) ([]byte, error)
}

// SerializeInput carries everything a serializer may need.
// Projected formats read Records and Fields; fixed-schema formats read Products.
type SerializeInput struct {
	Records     []Record
	Fields      []string
	Products    []Product
	Delimiter   string
	ShowHeaders bool
}

var (
	registry   = make(map[Format]Serializer)
	registryMu sync.RWMutex
)

// Register adds a serializer to the registry.
// Panics if the format is unknown or already registered.
func Register(s Serializer) {
	registryMu.Lock()
	defer registryMu.Unlock()

	f := s.Format()
	if !f.Valid() {
		panic(fmt.Sprintf("unknown format: %s", f))
	}
	if _, exists := registry[f]; exists {
		panic(fmt.Sprintf("serializer already registered: %s", f))
	}

	registry[f] = s
}

// Get returns the serializer for a format.
// Returns false if none is registered.
func Get(f Format) (Serializer, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := registry[f]
	return s, ok
}

// Registered returns the formats with a registered serializer, in canonical order.
func Registered() []Format {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var out []Format
	for _, f := range formatOrder {
		if _, ok := registry[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
