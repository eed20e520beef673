package inventory

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator genera identificadores opacos, únicos dentro de una colección.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator genera UUID v4. Es el generador de producción.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }

// SequenceGenerator genera ids numéricos crecientes. Útil en tests y para datos demo.
type SequenceGenerator struct {
	n atomic.Int64
}

// NewSequenceGenerator crea un generador que continúa después de start.
func NewSequenceGenerator(start int64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.n.Store(start)
	return g
}

func (g *SequenceGenerator) NewID() string {
	return strconv.FormatInt(g.n.Add(1), 10)
}
