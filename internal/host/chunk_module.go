package host

import (
	"fmt"
	"math"

	"wfc-chunk/internal/chunk"
)

// ChunkClass is the class name under which chunks are exposed to the host.
const ChunkClass = "WFCChunk"

// ChunkModule registers ChunkClass with generate(seed) and get_flat_grid()
// at LevelScene.
type ChunkModule struct {
	Config chunk.Config
}

// NewChunkModule returns a module constructing chunks from cfg.
func NewChunkModule(cfg chunk.Config) *ChunkModule {
	return &ChunkModule{Config: cfg}
}

// Initialize registers the chunk class.
func (m *ChunkModule) Initialize(db *ClassDB, level InitLevel) error {
	if level != LevelScene {
		return nil
	}
	// Construction errors surface here rather than on first Instantiate.
	if _, err := chunk.New(m.Config); err != nil {
		return err
	}
	cfg := m.Config
	return db.RegisterClass(Class{
		Name:   ChunkClass,
		Parent: "RefCounted",
		New: func() any {
			c, err := chunk.New(cfg)
			if err != nil {
				panic(err)
			}
			return c
		},
		Methods: []Method{
			{Name: "generate", Args: []string{"seed"}, Call: callGenerate},
			{Name: "get_flat_grid", Call: callFlatGrid},
		},
	})
}

// Deinitialize removes the chunk class.
func (m *ChunkModule) Deinitialize(db *ClassDB, level InitLevel) error {
	if level != LevelScene {
		return nil
	}
	return db.UnregisterClass(ChunkClass)
}

func callGenerate(obj any, args []any) (any, error) {
	c, ok := obj.(*chunk.Chunk)
	if !ok {
		return nil, fmt.Errorf("generate: receiver %T: %w", obj, ErrArgumentType)
	}
	seed, err := toInt64(args[0])
	if err != nil {
		return nil, fmt.Errorf("generate: seed: %w", err)
	}
	c.Generate(seed)
	return nil, nil
}

func callFlatGrid(obj any, _ []any) (any, error) {
	c, ok := obj.(*chunk.Chunk)
	if !ok {
		return nil, fmt.Errorf("get_flat_grid: receiver %T: %w", obj, ErrArgumentType)
	}
	return c.FlatGrid(), nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64: %w", n, ErrArgumentType)
		}
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64: %w", n, ErrArgumentType)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%T is not an integer: %w", v, ErrArgumentType)
	}
}
