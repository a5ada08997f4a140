package system

import (
	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
)

// Result is the outcome of one tick.
type Result struct {
	Tick   uint64
	Frames []Frame
	Quit   bool
}

// Pipeline runs input, movement, animation and render collection once per
// tick, always in that order. Movement and animation see the same
// post-input state.
type Pipeline struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *RenderSystem
}

func NewPipeline(w *ecs.World, sink Sink) *Pipeline {
	if w == nil {
		w = ecs.NewWorld()
	}
	render := NewRenderSystem(sink)
	return &Pipeline{
		world: w,
		scheduler: ecs.NewScheduler(
			NewInputSystem(),
			NewMovementSystem(),
			NewAnimationSystem(),
			render,
		),
		render: render,
	}
}

func (p *Pipeline) World() *ecs.World {
	if p == nil {
		return nil
	}
	return p.world
}

// Step queues the events received since the previous tick and runs the
// whole pipeline once. An empty batch still runs every stage.
func (p *Pipeline) Step(events []component.InputEvent) Result {
	if p == nil {
		return Result{}
	}
	tick := p.world.Tick()
	p.world.Events().Push(events...)
	p.scheduler.Update(p.world)
	return Result{
		Tick:   tick,
		Frames: p.render.Frames(),
		Quit:   p.world.QuitRequested(),
	}
}
