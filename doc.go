// Package spark is a CPU particle engine for [Ebitengine].
//
// Particles live in a fixed-capacity [ParticleBuffer]: one flat float32
// slice holding NumFields values per slot plus a packed liveness bit
// vector. Nothing is allocated per particle or per frame once an emitter is
// created.
//
// # Emitters
//
// An [Emitter] owns one buffer and three kinds of policy:
//
//   - a [Generator] decides how many particles to create each tick
//     ([Impulse], [Constant], [Noop]);
//   - [Initializer]s write the starting fields of each new particle, in
//     registration order ([ConstantLifespan], [RandomDirection],
//     [LayerTransform], ...);
//   - [Effector]s update live particles every tick, in registration order
//     ([Gravity], [Drag], [Move], [AlphaByAge], ...).
//
// Each tick runs generation, then reaps particles older than their
// lifespan, then applies effectors to the survivors:
//
//	sys := spark.NewSystem()
//	sys.NewEmitter(spark.EmitterConfig{
//		MaxParticles: 5000,
//		Texture:      spark.NewTexture(dot),
//		Layer:        layer,
//		Generator:    spark.Constant(100),
//		Initializers: []spark.Initializer{
//			spark.ConstantLifespan(5),
//			spark.ConstantARGB(0xFF99CCFF),
//			spark.Identity(),
//			spark.RandomVelocityBox(nil, -20, 20, -100, 0),
//		},
//		Effectors: []spark.Effector{
//			spark.Gravity(30),
//			spark.Move(),
//			spark.AlphaByAge(ease.OutQuad, 1, 0),
//		},
//	})
//
// When a generator reports exhaustion the emitter drops it and calls
// OnExhausted; once the last particle dies it calls OnEmpty (edge
// triggered). Set DestroyOnEmpty to remove one-shot effects automatically.
//
// # Rendering
//
// [ParticleBuffer.Render] hands each live particle to a [QuadSink] in slot
// order. [Batch] is the ebiten sink: it turns quads into vertices and draws
// them with one DrawTriangles32 call. [System.Draw] does this for every
// emitter, and [Run] hosts a system in a window.
//
// [Ebitengine]: https://ebitengine.org
package spark
