package shapes

import "github.com/go-gl/mathgl/mgl32"

// Entity is a handle issued by the host when a shape is spawned.
type Entity uint64

// Shape is a persistent shape as the host stores it, with the component type
// erased. The host calls Extract once per frame for every visible entity.
type Shape interface {
	// Local returns the entity's transform relative to its parent.
	Local() mgl32.Mat4

	// Extract expands the shape into records and sends them to q. parent is
	// the parent's world matrix, or the identity for root entities.
	Extract(q *Queue, parent mgl32.Mat4)
}

// Commands is the host's entity creation interface.
type Commands interface {
	Spawn(s Shape) Entity
}

// Bundle is everything a persistent shape entity carries: the component, its
// local transform and its fill.
type Bundle[C ShapeComponent[D], D ShapeData] struct {
	Shape     C
	Transform Transform
	Fill      Fill

	// Hidden skips the entity during extraction.
	Hidden bool
}

// Local implements Shape.
func (b *Bundle[C, D]) Local() mgl32.Mat4 {
	return b.Transform.Matrix()
}

// Extract implements Shape. Records are produced lazily from the component
// and appended in the order the component yields them.
func (b *Bundle[C, D]) Extract(q *Queue, parent mgl32.Mat4) {
	if b.Hidden {
		return
	}
	world := b.Local()
	if parent != mgl32.Ident4() {
		world = parent.Mul4(world)
	}
	SendAll(q, b.Shape.Data(world, b.Fill))
}

// Spawned is the result of a spawn: the entity handle and the bundle, which
// the owner may mutate in place between frames.
type Spawned[B any] struct {
	ID     Entity
	Bundle B
}

// Spawner creates persistent shape entities from its embedded config. The
// shapes are expanded into records every frame by Extract, not at spawn.
type Spawner struct {
	ShapeConfig

	commands Commands
}

// NewSpawner creates a spawner over the host's commands.
func NewSpawner(cmds Commands, opts ...ConfigOption) *Spawner {
	return &Spawner{
		ShapeConfig: NewConfig(opts...),
		commands:    cmds,
	}
}

// Config returns the current config.
func (s *Spawner) Config() *ShapeConfig {
	return &s.ShapeConfig
}

func spawn[C ShapeComponent[D], D ShapeData](s *Spawner, b *Bundle[C, D]) Spawned[*Bundle[C, D]] {
	id := s.commands.Spawn(b)
	Logger().Debug("shapes: spawned", "entity", uint64(id), "kind", zeroKind[D]())
	return Spawned[*Bundle[C, D]]{ID: id, Bundle: b}
}

func zeroKind[D ShapeData]() Kind {
	var zero D
	return zero.Kind()
}
