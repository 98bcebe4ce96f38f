package spark

import "github.com/hajimehoshi/ebiten/v2"

// defaultMaxParticles is the capacity used when EmitterConfig.MaxParticles
// is not positive.
const defaultMaxParticles = 128

// EmitterConfig controls how an emitter is created.
type EmitterConfig struct {
	// Name identifies the emitter in debug output.
	Name string
	// MaxParticles is the buffer capacity. New particles are silently dropped when full.
	MaxParticles int
	// Texture is drawn for each particle, centered on the particle's position.
	Texture Texture
	// BlendMode is the compositing operation for particle rendering.
	BlendMode BlendMode
	// Generator adds particles each tick. Nil means the emitter starts
	// exhausted and only creates particles through AddParticles.
	Generator Generator
	// Initializers run in order over each new particle.
	Initializers []Initializer
	// Effectors run in order over each live particle every tick.
	Effectors []Effector
	// Layer positions the emitter; particle transforms are relative to it.
	// Nil draws particles in screen space.
	Layer *Layer
	// DestroyOnEmpty destroys the emitter once its generator is exhausted
	// and its last particle has died.
	DestroyOnEmpty bool
}

// EmitterEventKind identifies an emitter notification.
type EmitterEventKind uint8

const (
	// EmitterExhausted fires once when the generator reports exhaustion.
	EmitterExhausted EmitterEventKind = iota
	// EmitterEmpty fires when an exhausted emitter has no live particles left.
	EmitterEmpty
)

// String returns the event kind name.
func (k EmitterEventKind) String() string {
	switch k {
	case EmitterExhausted:
		return "exhausted"
	case EmitterEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// EmitterEvent is delivered to an EventSink.
type EmitterEvent struct {
	Kind    EmitterEventKind
	Emitter *Emitter
}

// EventSink is the interface for optional ECS integration. When set on an
// emitter or system, emitter notifications are forwarded to it.
type EventSink interface {
	EmitEvent(event EmitterEvent)
}

// Emitter drives one ParticleBuffer: each tick it lets its generator create
// particles, then applies its effectors and reaps dead particles.
//
// The empty notification is edge-triggered. It fires once when an exhausted
// emitter runs out of particles and is re-armed only by SetGenerator, Reset
// or particles being added afterwards.
type Emitter struct {
	Name         string
	Initializers []Initializer
	Effectors    []Effector
	Layer        *Layer
	Texture      Texture
	BlendMode    BlendMode

	// OnExhausted is called when the generator is used up.
	OnExhausted func(e *Emitter)
	// OnEmpty is called when the emitter has no generator and no particles.
	OnEmpty func(e *Emitter)
	// DestroyOnEmpty destroys the emitter right after OnEmpty.
	DestroyOnEmpty bool

	buffer     *ParticleBuffer
	generator  Generator
	sink       EventSink
	batch      *Batch
	system     *System
	now        float32
	emptyFired bool
	destroyed  bool

	// debug is the debug flag of the system the emitter last joined;
	// joined is false until it joins one.
	debug, joined bool
}

// NewEmitter creates a standalone emitter. Use System.NewEmitter to have it
// updated and drawn with other emitters.
func NewEmitter(cfg EmitterConfig) *Emitter {
	max := cfg.MaxParticles
	if max <= 0 {
		max = defaultMaxParticles
	}
	return &Emitter{
		Name:           cfg.Name,
		Initializers:   cfg.Initializers,
		Effectors:      cfg.Effectors,
		Layer:          cfg.Layer,
		Texture:        cfg.Texture,
		BlendMode:      cfg.BlendMode,
		DestroyOnEmpty: cfg.DestroyOnEmpty,
		buffer:         NewParticleBuffer(max),
		generator:      cfg.Generator,
	}
}

// Buffer returns the emitter's particle buffer.
func (e *Emitter) Buffer() *ParticleBuffer {
	return e.buffer
}

// Now returns the emitter's clock in seconds.
func (e *Emitter) Now() float32 {
	return e.now
}

// Generator returns the current generator, or nil once exhausted.
func (e *Emitter) Generator() Generator {
	return e.generator
}

// SetGenerator installs g (nil to stop generating) and re-arms the empty
// notification.
func (e *Emitter) SetGenerator(g Generator) {
	e.generator = g
	e.emptyFired = false
}

// IsExhausted reports whether the emitter has no generator.
func (e *Emitter) IsExhausted() bool {
	return e.generator == nil
}

// SetEventSink forwards this emitter's notifications to sink.
func (e *Emitter) SetEventSink(sink EventSink) {
	e.sink = sink
}

// AddParticles creates up to count particles stamped with the emitter's
// current time. Batch initializers get their WillInit call first. It
// returns the number created, which is less than count when the buffer
// runs out of room.
func (e *Emitter) AddParticles(count int) int {
	if count <= 0 {
		return 0
	}
	for _, in := range e.Initializers {
		if bi, ok := in.(BatchInitializer); ok {
			bi.WillInit(count)
		}
	}
	added := e.buffer.Add(count, e.now, e.Initializers)
	if added > 0 {
		e.emptyFired = false
	}
	if added < count && e.debugEnabled() {
		debugSaturated(e, count, added)
	}
	return added
}

// Update advances the emitter's own clock by dt seconds and ticks it.
func (e *Emitter) Update(dt float32) {
	e.Tick(e.now+dt, dt)
}

// Tick runs one simulation step at time now, dt seconds after the previous
// one: generation first, then effectors and reaping.
func (e *Emitter) Tick(now, dt float32) {
	if e.debugEnabled() {
		debugCheckDestroyed(e, "Tick")
	}
	e.now = now
	if e.generator != nil && e.generator.Generate(e, now, dt) {
		e.generator = nil
		e.notify(EmitterExhausted)
	}
	if e.buffer.Apply(e.Effectors, now, dt) == 0 && e.generator == nil && !e.emptyFired {
		e.emptyFired = true
		e.notify(EmitterEmpty)
	}
}

func (e *Emitter) notify(kind EmitterEventKind) {
	switch kind {
	case EmitterExhausted:
		if e.OnExhausted != nil {
			e.OnExhausted(e)
		}
	case EmitterEmpty:
		if e.OnEmpty != nil {
			e.OnEmpty(e)
		}
	}
	if e.sink != nil {
		e.sink.EmitEvent(EmitterEvent{Kind: kind, Emitter: e})
	}
	// OnEmpty may have restarted the emitter.
	if kind == EmitterEmpty && e.DestroyOnEmpty && e.emptyFired && !e.destroyed {
		e.Destroy()
	}
}

// Render hands every live particle to sink as a quad the size of the
// emitter's texture.
func (e *Emitter) Render(sink QuadSink) {
	w, h := e.Texture.Size()
	e.buffer.Render(sink, w, h)
}

// Draw renders the live particles onto target, positioned by the emitter's
// layer and faded by its alpha.
func (e *Emitter) Draw(target *ebiten.Image) {
	if e.destroyed || e.Texture.Image == nil {
		return
	}
	if e.batch == nil {
		e.batch = NewBatch()
	}
	e.batch.Prepare(e.Texture, e.buffer.Cap())
	if e.Layer != nil {
		e.batch.SetTransform(e.Layer.WorldTransform())
		e.batch.SetTint(Color{1, 1, 1, float32(e.Layer.WorldAlpha())})
	}
	e.Render(e.batch)
	e.batch.Flush(target, e.BlendMode)
}

// Reset kills all particles, rewinds the clock to zero and re-arms the
// empty notification. The generator is kept.
func (e *Emitter) Reset() {
	e.buffer.Clear()
	e.now = 0
	e.emptyFired = false
}

// Destroy detaches the emitter from its system. A destroyed emitter draws
// nothing; ticking it again is a bug caught in debug mode.
func (e *Emitter) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.system != nil {
		e.system.Remove(e)
	}
}

// debugEnabled reports whether debug checks apply to e. An emitter that
// never joined a system follows the package-wide flag.
func (e *Emitter) debugEnabled() bool {
	if e.joined {
		return e.debug
	}
	return globalDebug
}

// IsDestroyed reports whether Destroy has been called.
func (e *Emitter) IsDestroyed() bool {
	return e.destroyed
}
