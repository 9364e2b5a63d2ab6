package flappy

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// scriptedRand replays a fixed sequence of values, cycling when exhausted.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestSim(vals ...float64) *Simulation {
	if len(vals) == 0 {
		vals = []float64{0.5}
	}
	return New(config.DefaultFlappyConfig(), &scriptedRand{vals: vals})
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewSimulationIsStopped(t *testing.T) {
	g := newTestSim()

	if g.Running() {
		t.Error("New simulation should not be running")
	}
	snap := g.Snapshot()
	if snap.BirdY != 250 || snap.Attempts != 0 || len(snap.Pipes) != 0 {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}

	// Ticks before the first start do nothing
	g.StepPhysics()
	g.StepPipes()
	if after := g.Snapshot(); !reflect.DeepEqual(after, snap) {
		t.Errorf("ticks while stopped changed state: %+v", after)
	}
}

func TestGravityAccumulates(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	const n = 10
	for i := 0; i < n; i++ {
		g.StepPhysics()
	}

	gravity := g.Config().Physics.Gravity
	if !approxEqual(g.state.Velocity, n*gravity) {
		t.Errorf("velocity after %d ticks = %f, expected %f", n, g.state.Velocity, n*gravity)
	}
	// Lagged integration: position moved by 0+1+...+(n-1) gravity steps
	expectedY := 250 + gravity*float64(n*(n-1)/2)
	if !approxEqual(g.state.BirdY, expectedY) {
		t.Errorf("birdY after %d ticks = %f, expected %f", n, g.state.BirdY, expectedY)
	}
}

func TestGravityWithoutLag(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.LaggedIntegration = false
	g := New(cfg, &scriptedRand{vals: []float64{0.5}})
	g.OnStart()

	const n = 10
	for i := 0; i < n; i++ {
		g.StepPhysics()
	}

	expectedY := 250 + cfg.Physics.Gravity*float64(n*(n+1)/2)
	if !approxEqual(g.state.BirdY, expectedY) {
		t.Errorf("birdY after %d ticks = %f, expected %f", n, g.state.BirdY, expectedY)
	}
}

func TestBirdNeverAboveFieldTop(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	for i := 0; i < 100; i++ {
		g.OnJump()
		g.StepPhysics()
		if g.state.BirdY < 0 {
			t.Fatalf("birdY went negative at tick %d: %f", i, g.state.BirdY)
		}
	}
	if g.state.BirdY != 0 {
		t.Errorf("constant flapping should pin the bird at 0, got %f", g.state.BirdY)
	}
	if !g.Running() {
		t.Error("touching the top edge should not end the attempt")
	}

	g.state.Velocity = -1e6
	g.StepPhysics()
	if g.state.BirdY != 0 {
		t.Errorf("huge upward velocity should clamp to 0, got %f", g.state.BirdY)
	}
}

func TestJumpOverridesVelocity(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	g.state.Velocity = 9.2
	g.OnJump()
	if g.state.Velocity != g.Config().Physics.JumpImpulse {
		t.Errorf("velocity after jump = %f, expected %f", g.state.Velocity, g.Config().Physics.JumpImpulse)
	}

	// Repeated jumps are idempotent
	g.OnJump()
	g.OnJump()
	if g.state.Velocity != g.Config().Physics.JumpImpulse {
		t.Errorf("velocity after repeated jumps = %f", g.state.Velocity)
	}
}

func TestJumpWhileStoppedIsNoop(t *testing.T) {
	g := newTestSim()
	g.OnStart()
	g.state.Running = false
	g.state.Velocity = 3

	g.OnJump()

	if g.state.Velocity != 3 {
		t.Errorf("jump while stopped changed velocity to %f", g.state.Velocity)
	}
}

func TestPipeSpawnGeometry(t *testing.T) {
	g := newTestSim(0.5)
	g.OnStart()

	g.StepPipes()

	if len(g.state.Pipes) != 1 {
		t.Fatalf("first pipe tick should spawn one pipe, got %d", len(g.state.Pipes))
	}
	p := g.state.Pipes[0]
	cfg := g.Config()
	// 0.5 * (500 - 150 - 50) = 150
	if p.X != cfg.Field.Width || p.TopHeight != 150 || p.BottomHeight != 200 || p.Passed {
		t.Errorf("unexpected pipe %+v", p)
	}
	if p.TopHeight+cfg.Obstacles.GapHeight+p.BottomHeight != cfg.Field.Height {
		t.Errorf("pipe heights do not sum to the field height: %+v", p)
	}
}

func TestPipeGapBounds(t *testing.T) {
	g := newTestSim(0, 0.999999)
	g.OnStart()
	cfg := g.Config()

	g.StepPipes()
	if top := g.state.Pipes[0].TopHeight; top != 0 {
		t.Errorf("r=0 should put the gap at the top, got top=%f", top)
	}

	g.state.Pipes[0].X = 100 // force the next spawn
	g.StepPipes()
	last := g.state.Pipes[len(g.state.Pipes)-1]
	if last.BottomHeight < cfg.Obstacles.GapMargin {
		t.Errorf("bottom obstacle %f is shorter than the gap margin", last.BottomHeight)
	}
}

func TestPipeSpawnIsDistanceDriven(t *testing.T) {
	g := newTestSim(0.5)
	g.OnStart()

	// Tick 1 spawns at x=400; the pipe reaches x=199 on tick 68
	for i := 0; i < 67; i++ {
		g.StepPipes()
	}
	if len(g.state.Pipes) != 1 {
		t.Fatalf("after 67 ticks expected 1 pipe, got %d (x=%f)", len(g.state.Pipes), g.state.Pipes[0].X)
	}
	if g.state.Pipes[0].X != 202 {
		t.Errorf("pipe x after 67 ticks = %f, expected 202", g.state.Pipes[0].X)
	}

	g.StepPipes()
	if len(g.state.Pipes) != 2 {
		t.Fatalf("after 68 ticks expected 2 pipes, got %d", len(g.state.Pipes))
	}
	if g.state.Pipes[0].X != 199 || g.state.Pipes[1].X != 400 {
		t.Errorf("pipes out of order or misplaced: %+v", g.state.Pipes)
	}
}

func TestPipeRemovedOnlyAtLeftEdge(t *testing.T) {
	g := newTestSim(0.5)
	g.OnStart()

	// Step is 3, width 60: -57 ends with trailing edge 0, -56 with 1
	g.state.Pipes = []Pipe{
		{X: -57, TopHeight: 0, BottomHeight: 0},
		{X: -56, TopHeight: 0, BottomHeight: 0},
		{X: 300, TopHeight: 0, BottomHeight: 0},
	}

	g.StepPipes()

	if len(g.state.Pipes) != 2 {
		t.Fatalf("expected 2 pipes after culling, got %d: %+v", len(g.state.Pipes), g.state.Pipes)
	}
	if g.state.Pipes[0].X != -59 {
		t.Errorf("pipe with trailing edge 1 should survive, got %+v", g.state.Pipes[0])
	}
	if g.state.Pipes[1].X != 297 {
		t.Errorf("rightmost pipe should have shifted to 297, got %+v", g.state.Pipes[1])
	}
}

func TestPipeCollisionScenario(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	g.state.BirdY = 250
	g.state.Pipes = []Pipe{{X: 50, TopHeight: 100, BottomHeight: 250}}

	out := evaluate(&g.state, g.Config())

	if !out.HitPipe || g.Running() {
		t.Errorf("bird bottom 280 below gap bottom 250 should collide, outcome %+v", out)
	}
}

func TestBirdInsideGapSurvives(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	g.state.BirdY = 200
	g.state.Pipes = []Pipe{{X: 40, TopHeight: 150, BottomHeight: 200}}

	out := evaluate(&g.state, g.Config())

	if out.Stopped() || !g.Running() {
		t.Errorf("bird at [200,230] inside gap [150,300] should survive, outcome %+v", out)
	}
}

func TestTopPipeCollision(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	g.state.BirdY = 120
	g.state.Pipes = []Pipe{{X: 70, TopHeight: 150, BottomHeight: 200}}

	if out := evaluate(&g.state, g.Config()); !out.HitPipe {
		t.Error("bird above the gap should hit the top obstacle")
	}
}

func TestScoringStrictlyPastBird(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	// Trailing edge exactly at birdX=50 does not count
	g.state.Pipes = []Pipe{{X: -10, TopHeight: 0, BottomHeight: 0}}
	evaluate(&g.state, g.Config())
	if g.state.Score != 0 || g.state.Pipes[0].Passed {
		t.Fatalf("trailing edge at 50 should not score, score=%d", g.state.Score)
	}

	g.state.Pipes[0].X = -10.5
	out := evaluate(&g.state, g.Config())
	if g.state.Score != 1 || !g.state.Pipes[0].Passed || out.Scored != 1 {
		t.Fatalf("trailing edge at 49.5 should score once, score=%d", g.state.Score)
	}

	// Re-evaluating never scores the same pipe twice
	evaluate(&g.state, g.Config())
	g.state.Pipes[0].X = -30
	evaluate(&g.state, g.Config())
	if g.state.Score != 1 {
		t.Errorf("pipe scored more than once, score=%d", g.state.Score)
	}
}

func TestEvaluationOrderIndependent(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pipes := []Pipe{
		{X: -20, TopHeight: 100, BottomHeight: 250},
		{X: -15, TopHeight: 80, BottomHeight: 270},
		{X: 40, TopHeight: 210, BottomHeight: 140},
		{X: 250, TopHeight: 300, BottomHeight: 50},
	}

	forward := State{BirdY: 200, Running: true, Pipes: append([]Pipe(nil), pipes...)}
	reversed := State{BirdY: 200, Running: true}
	for i := len(pipes) - 1; i >= 0; i-- {
		reversed.Pipes = append(reversed.Pipes, pipes[i])
	}

	outF := evaluate(&forward, cfg)
	outR := evaluate(&reversed, cfg)

	if forward.Running != reversed.Running || forward.Score != reversed.Score || outF != outR {
		t.Errorf("order changed the result: forward %+v/%+v, reversed %+v/%+v",
			outF, forward, outR, reversed)
	}
	if forward.Score != 2 || forward.Running {
		t.Errorf("expected score 2 and a collision, got score=%d running=%v", forward.Score, forward.Running)
	}
}

func TestGroundEndsAttempt(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	g.state.BirdY = 469.5
	g.state.Velocity = 1
	out := g.StepPhysics()

	if !out.HitFloor || g.Running() {
		t.Errorf("reaching y >= 470 should stop the attempt, outcome %+v", out)
	}

	// Stopped is terminal until the next start
	y := g.state.BirdY
	g.StepPhysics()
	g.StepPipes()
	g.OnJump()
	if g.state.BirdY != y || g.Running() {
		t.Error("stopped simulation should ignore ticks and jumps")
	}
}

func TestOnStartResetsMidAttempt(t *testing.T) {
	g := newTestSim()
	g.OnStart()

	g.state.Score = 7
	g.state.BirdY = 30
	g.state.Velocity = 4
	g.state.Pipes = []Pipe{{X: 100}, {X: 300}}

	g.OnStart()

	snap := g.Snapshot()
	if snap.Score != 0 || len(snap.Pipes) != 0 || snap.BirdY != 250 || snap.Velocity != 0 || !snap.Running {
		t.Errorf("OnStart should reset everything, got %+v", snap)
	}
	if snap.Attempts != 2 {
		t.Errorf("attempts = %d, expected 2", snap.Attempts)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestSim()
	g.OnStart()
	g.StepPipes()

	snap := g.Snapshot()
	snap.Pipes[0].X = -1000
	snap.Score = 42

	if g.state.Pipes[0].X == -1000 || g.state.Score == 42 {
		t.Error("mutating a snapshot leaked into the simulation")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Seed = 12345

	run := func() Snapshot {
		g := New(cfg, nil)
		g.OnStart()
		for i := 0; i < 400 && g.Running(); i++ {
			if i%15 == 0 {
				g.OnJump()
			}
			g.StepPhysics()
			g.StepPipes()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different runs:\n%+v\n%+v", a, b)
	}
}

func TestAutopilotClearsFixedGaps(t *testing.T) {
	g := newTestSim(0.5) // every gap spans [150, 300]
	pilot := NewAutopilot(g.Config())
	g.OnStart()

	for i := 0; i < 300; i++ {
		g.StepPhysics()
		g.StepPipes()
		if pilot.ShouldJump(g.Snapshot()) {
			g.OnJump()
		}
		if !g.Running() {
			t.Fatalf("autopilot crashed at tick %d: %+v", i, g.Snapshot())
		}
	}

	if g.Score() < 2 {
		t.Errorf("autopilot should pass at least 2 pipes in 300 ticks, scored %d", g.Score())
	}
}

func TestAutopilotDecisions(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pilot := NewAutopilot(cfg)
	pipe := Pipe{X: 100, TopHeight: 150, BottomHeight: 200} // gap floor at 300

	tests := []struct {
		name     string
		snap     Snapshot
		expected bool
	}{
		{"stopped", Snapshot{BirdY: 400, Velocity: 1}, false},
		{"rising", Snapshot{BirdY: 400, Velocity: -2, Running: true}, false},
		{"high in the gap", Snapshot{BirdY: 200, Velocity: 2, Running: true, Pipes: []Pipe{pipe}}, false},
		{"near the gap floor", Snapshot{BirdY: 265, Velocity: 2, Running: true, Pipes: []Pipe{pipe}}, true},
		{"passed pipes are ignored", Snapshot{BirdY: 200, Velocity: 1, Running: true,
			Pipes: []Pipe{{X: -30, TopHeight: 0, BottomHeight: 400}}}, false},
		{"no pipes aims at the centre", Snapshot{BirdY: 300, Velocity: 1, Running: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pilot.ShouldJump(tc.snap); got != tc.expected {
				t.Errorf("ShouldJump() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
