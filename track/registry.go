package track

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Registry holds named track generators and loaded geometries
// Geometry is built on first lookup and shared afterwards
type Registry struct {
	mu       sync.Mutex
	builders map[string]func() *Geometry
	built    map[string]*Geometry
}

// NewRegistry returns a registry preloaded with the generated ovals
func NewRegistry() *Registry {
	r := &Registry{
		builders: make(map[string]func() *Geometry),
		built:    make(map[string]*Geometry),
	}
	for _, spec := range []OvalSpec{Speedway(), Superoval()} {
		r.RegisterOval(spec)
	}
	return r
}

// RegisterOval adds a generated track under its spec name
func (r *Registry) RegisterOval(spec OvalSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[spec.Name] = func() *Geometry { return GenerateOval(spec) }
	delete(r.built, spec.Name)
}

// Add registers an already loaded geometry
func (r *Registry) Add(g *Geometry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.built[g.Name] = g
	delete(r.builders, g.Name)
}

// Names returns every registered track name sorted
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := lo.Union(lo.Keys(r.builders), lo.Keys(r.built))
	slices.Sort(names)
	return names
}

// Get returns the named geometry, generating it on first use
func (r *Registry) Get(name string) (*Geometry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.built[name]; ok {
		return g, nil
	}
	build, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTrack)
	}
	g := build()
	r.built[name] = g
	return g, nil
}

// Resolve returns geometries for the given names in order
func (r *Registry) Resolve(names []string) ([]*Geometry, error) {
	out := make([]*Geometry, 0, len(names))
	for _, name := range lo.Uniq(names) {
		g, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// LoadDir adds every manifest found at dir/track.yaml or dir/*/track.yaml
// and returns the loaded names
func (r *Registry) LoadDir(dir string) ([]string, error) {
	nested, err := filepath.Glob(filepath.Join(dir, "*", ManifestFile))
	if err != nil {
		return nil, err
	}
	paths := append([]string{filepath.Join(dir, ManifestFile)}, nested...)

	var names []string
	for i, path := range paths {
		g, err := Load(path)
		if err != nil {
			if i == 0 && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return names, fmt.Errorf("track %s: %w", path, err)
		}
		r.Add(g)
		names = append(names, g.Name)
	}
	return names, nil
}
