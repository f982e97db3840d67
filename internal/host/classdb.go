package host

import (
	"fmt"
	"sort"
	"sync"
)

// Method is one callable bound on a class.
type Method struct {
	Name string
	Args []string
	Call func(obj any, args []any) (any, error)
}

// Class describes a constructible type and its bound methods.
type Class struct {
	Name    string
	Parent  string
	New     func() any
	Release func(obj any)
	Methods []Method
}

// ClassDB is the registry the host queries to construct objects and
// dispatch method calls by name.
type ClassDB struct {
	mu      sync.RWMutex
	classes map[string]*classEntry
}

type classEntry struct {
	class   Class
	methods map[string]Method
}

// NewClassDB returns an empty registry.
func NewClassDB() *ClassDB {
	return &ClassDB{classes: map[string]*classEntry{}}
}

// RegisterClass adds c to the registry.
func (db *ClassDB) RegisterClass(c Class) error {
	if c.Name == "" || c.New == nil {
		return fmt.Errorf("register class %q: name and constructor are required", c.Name)
	}
	entry := &classEntry{class: c, methods: make(map[string]Method, len(c.Methods))}
	for _, m := range c.Methods {
		if m.Name == "" || m.Call == nil {
			return fmt.Errorf("register class %q: method %q is incomplete", c.Name, m.Name)
		}
		entry.methods[m.Name] = m
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.classes[c.Name]; ok {
		return fmt.Errorf("register class %q: %w", c.Name, ErrClassExists)
	}
	db.classes[c.Name] = entry
	return nil
}

// UnregisterClass removes a class. Existing handles stay usable.
func (db *ClassDB) UnregisterClass(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.classes[name]; !ok {
		return fmt.Errorf("unregister class %q: %w", name, ErrUnknownClass)
	}
	delete(db.classes, name)
	return nil
}

// Classes lists registered class names in sorted order.
func (db *ClassDB) Classes() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := make([]string, 0, len(db.classes))
	for name := range db.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Methods lists the method names bound on class in sorted order.
func (db *ClassDB) Methods(class string) ([]string, error) {
	entry, err := db.lookup(class)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entry.methods))
	for name := range entry.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Instantiate constructs a new object of class and wraps it in a handle
// holding one reference.
func (db *ClassDB) Instantiate(class string) (*Handle, error) {
	entry, err := db.lookup(class)
	if err != nil {
		return nil, err
	}
	return newHandle(class, entry.class.New(), entry.class.Release), nil
}

// Call dispatches method on the object behind h.
func (db *ClassDB) Call(h *Handle, method string, args ...any) (any, error) {
	if h == nil {
		return nil, fmt.Errorf("call %s: %w", method, ErrReleased)
	}
	entry, err := db.lookup(h.Class())
	if err != nil {
		return nil, err
	}
	m, ok := entry.methods[method]
	if !ok {
		return nil, fmt.Errorf("call %s.%s: %w", h.Class(), method, ErrUnknownMethod)
	}
	if len(args) != len(m.Args) {
		return nil, fmt.Errorf("call %s.%s: got %d, want %d: %w", h.Class(), method, len(args), len(m.Args), ErrArgumentCount)
	}
	return h.With(func(obj any) (any, error) {
		return m.Call(obj, args)
	})
}

func (db *ClassDB) lookup(class string) (*classEntry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	entry, ok := db.classes[class]
	if !ok {
		return nil, fmt.Errorf("class %q: %w", class, ErrUnknownClass)
	}
	return entry, nil
}
