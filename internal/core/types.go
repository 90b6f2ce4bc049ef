package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// StateLabeler is implemented by sims that name their cell states, e.g.
// "Dead" and "Alive". Renderers map each label to a display color and never
// interpret the raw cell values themselves.
type StateLabeler interface {
	StateLabels() []string
}

// Populationer is implemented by sims that track alive-cell counts; the HUD
// uses it for its step/population readout.
type Populationer interface {
	Population() int
	StepCount() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
