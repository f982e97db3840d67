package host

import "fmt"

// InitLevel orders the stages at which a host loads and unloads extensions.
type InitLevel int

const (
	LevelCore InitLevel = iota
	LevelServers
	LevelScene
	LevelEditor
)

func (l InitLevel) String() string {
	switch l {
	case LevelCore:
		return "core"
	case LevelServers:
		return "servers"
	case LevelScene:
		return "scene"
	case LevelEditor:
		return "editor"
	default:
		return fmt.Sprintf("InitLevel(%d)", int(l))
	}
}

// Module is a pair of lifecycle hooks. Hooks only construct or tear down
// registrations; they hold no generation logic.
type Module interface {
	Initialize(db *ClassDB, level InitLevel) error
	Deinitialize(db *ClassDB, level InitLevel) error
}

// Extension routes host lifecycle callbacks to its modules, skipping levels
// below MinLevel.
type Extension struct {
	DB       *ClassDB
	MinLevel InitLevel
	modules  []Module
}

// NewExtension returns an extension bound to db.
func NewExtension(db *ClassDB, minLevel InitLevel, modules ...Module) *Extension {
	return &Extension{DB: db, MinLevel: minLevel, modules: modules}
}

// Initialize runs every module's Initialize hook in registration order.
func (e *Extension) Initialize(level InitLevel) error {
	if level < e.MinLevel {
		return nil
	}
	for _, m := range e.modules {
		if err := m.Initialize(e.DB, level); err != nil {
			return fmt.Errorf("initialize at %s: %w", level, err)
		}
	}
	return nil
}

// Deinitialize runs the Deinitialize hooks in reverse order.
func (e *Extension) Deinitialize(level InitLevel) error {
	if level < e.MinLevel {
		return nil
	}
	for i := len(e.modules) - 1; i >= 0; i-- {
		if err := e.modules[i].Deinitialize(e.DB, level); err != nil {
			return fmt.Errorf("deinitialize at %s: %w", level, err)
		}
	}
	return nil
}
