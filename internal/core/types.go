package core

// Size describes the dimensions of a generator grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a map generator must implement. Step
// advances the generator by one full iteration; Cells exposes the current
// map for rendering.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []Cell
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available generator factories.
func Sims() map[string]Factory {
	return sims
}
