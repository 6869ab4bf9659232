// Package idgen genera los identificadores de la aplicación: ids locales de
// usuario derivados del tiempo (snowflake), ids de sesión de edición (KSUID)
// y tokens de activación (UUID).
package idgen

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// Generator produce ids snowflake para un nodo fijo.
type Generator struct {
	mu   sync.Mutex
	node *snowflake.Node
}

// New construye el generador para el nodo indicado (0-1023).
func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{node: node}, nil
}

// NextUserID devuelve un id local derivado del timestamp. Si el generador no
// tiene nodo cae a un nodo 1 efímero.
func (g *Generator) NextUserID() string {
	if g == nil || g.node == nil {
		return NewSnowflakeIDWithNode(1)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.node.Generate().String()
}

// NewKSUID genera un KSUID global, ordenable por tiempo.
func NewKSUID() string {
	return ksuid.New().String()
}

// NewUUID genera un UUID v4.
func NewUUID() string {
	return uuid.NewString()
}

// NewSnowflakeIDWithNode genera un id snowflake con el nodo indicado.
// Si el nodo no puede inicializarse, cae a un KSUID.
func NewSnowflakeIDWithNode(nodeID int64) string {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return NewKSUID()
	}
	return node.Generate().String()
}
