package game

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/rps-arcade/internal/config"
	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/fx"
	"github.com/vovakirdan/rps-arcade/internal/overlay"
	"github.com/vovakirdan/rps-arcade/internal/rps"
	"github.com/vovakirdan/rps-arcade/internal/surface"
)

// forcedRand always picks index i (mod n) and returns 0.5 for floats.
type forcedRand struct{ i int }

func (r forcedRand) Intn(n int) int   { return r.i % n }
func (r forcedRand) Float64() float64 { return 0.5 }

const scissorsIndex = 2

// texts is a canvas that only records text draws.
type texts struct{ got []string }

func (t *texts) Size() (int, int)                                   { return 680, 420 }
func (t *texts) Clear(core.Color)                                   {}
func (t *texts) FillCircle(_, _, _ float64, _ core.Color, _ uint8) {}
func (t *texts) Line(_, _, _, _, _ float64, _ core.Color)           {}
func (t *texts) Image(image.Image, int, int, int, int)              {}
func (t *texts) Text(s string, _, _, _ float64, _ core.Color) {
	t.got = append(t.got, s)
}

func missingOverlay(string) (*overlay.Overlay, error) {
	return nil, os.ErrNotExist
}

func newForcedGame(t *testing.T, target int, opts ...Option) *Game {
	t.Helper()
	cfg := config.DefaultRPSConfig()
	cfg.Match.TargetWins = target
	opts = append([]Option{
		WithRand(forcedRand{scissorsIndex}),
		WithOverlayLoader(missingOverlay),
	}, opts...)
	return New(cfg, core.RuntimeConfig{TickRate: 60}, opts...)
}

// run advances the game by d in 16ms frames.
func run(g *Game, d time.Duration) {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		g.Advance(frame)
	}
}

func TestRockBeatsForcedScissors(t *testing.T) {
	g := newForcedGame(t, 3)

	round, err := g.Play(rps.Rock)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if round.Computer != rps.Scissors || round.Outcome != rps.Win {
		t.Fatalf("round = %+v, want scissors/win", round)
	}

	run(g, time.Second)
	if g.State().PlayerScore != 0 {
		t.Error("score must not change before the reveal delay")
	}

	run(g, 600*time.Millisecond)
	st := g.State()
	if st.PlayerScore != 1 || st.ComputerScore != 0 {
		t.Fatalf("score = %d:%d, want 1:0", st.PlayerScore, st.ComputerScore)
	}
	if st.Celebrating {
		t.Error("celebration started below the target")
	}
	if g.Phase() != surface.PhaseRevealing {
		t.Errorf("phase = %s, want revealing", g.Phase())
	}

	cv := &texts{}
	g.Draw(cv)
	if len(cv.got) != 1 || cv.got[0] != "YOU WIN!" {
		t.Errorf("label = %q, want [YOU WIN!]", cv.got)
	}
}

func TestPartialConfigKeepsRevealDelay(t *testing.T) {
	cfg, err := config.Parse([]byte("match:\n  target_wins: 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g := New(cfg, core.RuntimeConfig{TickRate: 60},
		WithRand(forcedRand{scissorsIndex}),
		WithOverlayLoader(missingOverlay),
	)

	if _, err := g.Play(rps.Rock); err != nil {
		t.Fatalf("Play: %v", err)
	}
	run(g, 100*time.Millisecond)
	if g.Phase() != surface.PhaseBattling {
		t.Errorf("phase after 100ms = %s, want battling", g.Phase())
	}
	if g.State().PlayerScore != 0 {
		t.Error("score recorded while the battle is still shaking")
	}

	run(g, 1500*time.Millisecond)
	if got := g.State().PlayerScore; got != 1 {
		t.Errorf("score after the reveal delay = %d, want 1", got)
	}
}

func TestCelebrationPacingFixed(t *testing.T) {
	cfg := config.DefaultRPSConfig()
	cfg.Celebration.DurationMs = 2000
	g := New(cfg, core.RuntimeConfig{TickRate: 60})

	got := g.field.Config()
	want := fx.DefaultConfig()
	want.DurationMs = 2000
	if got != want {
		t.Errorf("field config = %+v, want %+v", got, want)
	}
}

func TestCelebrationAtTarget(t *testing.T) {
	loads := 0
	g := newForcedGame(t, 2, WithOverlayLoader(func(string) (*overlay.Overlay, error) {
		loads++
		return nil, os.ErrNotExist
	}))

	g.Play(rps.Rock)
	run(g, 2*time.Second)
	if g.State().Celebrating {
		t.Fatal("celebrating after first win with target 2")
	}

	g.Play(rps.Rock)
	run(g, 2*time.Second)
	st := g.State()
	if !st.Celebrating || !st.MatchOver || !st.PlayerWon {
		t.Fatalf("state = %+v, want celebrating match win", st)
	}
	if loads != 1 {
		t.Errorf("overlay loads = %d, want 1", loads)
	}
	if g.Snapshot().Particles == 0 {
		t.Error("celebration has no particles")
	}
	if _, ok := g.Overlay(); ok {
		t.Error("missing overlay reported as playing")
	}

	text, c := g.Instruction()
	if text != g.Config().Labels.MatchWon || c != core.ColorWin {
		t.Errorf("instruction = %q", text)
	}
}

func TestComputerWinDoesNotCelebrate(t *testing.T) {
	g := newForcedGame(t, 1)
	g.Play(rps.Paper) // paper loses to scissors
	run(g, 2*time.Second)

	st := g.State()
	if !st.MatchOver || st.PlayerWon || st.Celebrating {
		t.Errorf("state = %+v, want lost match without celebration", st)
	}
	text, c := g.Instruction()
	if text != g.Config().Labels.MatchLost || c != core.ColorLose {
		t.Errorf("instruction = %q", text)
	}
}

func TestPlayAfterMatchOver(t *testing.T) {
	g := newForcedGame(t, 1)
	g.Play(rps.Rock)
	run(g, 2*time.Second)

	if g.CanPlay() {
		t.Error("CanPlay after match end")
	}
	if _, err := g.Play(rps.Rock); !errors.Is(err, ErrMatchOver) {
		t.Errorf("Play after match = %v, want ErrMatchOver", err)
	}
	if g.Snapshot().RevealPending {
		t.Error("rejected play armed a reveal")
	}
}

func TestInvalidChoiceIgnored(t *testing.T) {
	g := newForcedGame(t, 3)
	before := g.Snapshot()
	if _, err := g.Play(rps.Choice(42)); !errors.Is(err, rps.ErrInvalidChoice) {
		t.Fatalf("err = %v, want ErrInvalidChoice", err)
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
}

func TestNewRoundCancelsPendingReveal(t *testing.T) {
	g := newForcedGame(t, 3)

	g.Play(rps.Rock)
	run(g, 500*time.Millisecond)
	g.Play(rps.Scissors) // draw against scissors

	run(g, 1200*time.Millisecond)
	if n := g.State().Rounds; n != 0 {
		t.Fatalf("rounds = %d before the second reveal, want 0", n)
	}
	run(g, 400*time.Millisecond)

	hist := g.History()
	if len(hist) != 1 {
		t.Fatalf("history = %d entries, want 1", len(hist))
	}
	if hist[0].Round.Outcome != rps.Draw || g.State().PlayerScore != 0 {
		t.Errorf("only the second round (draw) should count, got %+v", hist[0])
	}
}

func TestResetMatch(t *testing.T) {
	g := newForcedGame(t, 1)
	g.Play(rps.Rock)
	run(g, 2*time.Second)
	if !g.State().Celebrating {
		t.Fatal("expected celebration")
	}

	g.ResetMatch()
	st := g.State()
	if st.PlayerScore != 0 || st.MatchOver || st.Celebrating {
		t.Errorf("state after reset = %+v", st)
	}
	if st.TargetWins != 1 {
		t.Errorf("target = %d, reset must keep it", st.TargetWins)
	}
	if g.Phase() != surface.PhaseIdle {
		t.Errorf("phase = %s, want idle", g.Phase())
	}
	if !g.CanPlay() {
		t.Error("buttons stay disabled after reset")
	}
}

func TestStepActions(t *testing.T) {
	g := newForcedGame(t, 3)

	in := core.NewInputFrame()
	in.Set(core.ActionTargetUp)
	res := g.Step(in)
	if res.State.TargetWins != 4 {
		t.Errorf("target = %d, want 4", res.State.TargetWins)
	}

	in.Clear()
	in.Set(core.ActionRock)
	g.Step(in)
	if g.Phase() != surface.PhaseBattling {
		t.Errorf("phase = %s after rock, want battling", g.Phase())
	}

	in.Clear()
	for i := 0; i < 120; i++ {
		g.Step(in)
	}
	if g.State().PlayerScore != 1 {
		t.Errorf("score = %d after 2s of steps, want 1", g.State().PlayerScore)
	}

	in.Set(core.ActionReset)
	if g.Step(in).State.PlayerScore != 0 {
		t.Error("reset action did not zero the score")
	}
}

func TestTargetClamp(t *testing.T) {
	g := newForcedGame(t, 3)
	g.SetTarget(0)
	if got := g.State().TargetWins; got != rps.MinTarget {
		t.Errorf("target = %d, want %d", got, rps.MinTarget)
	}
	g.SetTarget(500)
	if got := g.State().TargetWins; got != rps.MaxTarget {
		t.Errorf("target = %d, want %d", got, rps.MaxTarget)
	}
}

func testGIF(t *testing.T) []byte {
	t.Helper()
	pal := color.Palette{color.Black, color.White}
	anim := &gif.GIF{}
	for i := 0; i < 2; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
		frame.SetColorIndex(i, i, 1)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 10)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestOverlayPlaysDuringCelebration(t *testing.T) {
	data := testGIF(t)
	g := newForcedGame(t, 1, WithOverlayLoader(func(string) (*overlay.Overlay, error) {
		return overlay.Decode(bytes.NewReader(data))
	}))

	g.Play(rps.Rock)
	run(g, 2*time.Second)

	o, ok := g.Overlay()
	if !ok {
		t.Fatal("overlay not playing during celebration")
	}
	_, start := o.Frame()
	run(g, 128*time.Millisecond)
	if _, seq := o.Frame(); seq == start {
		t.Error("overlay did not advance")
	}

	g.ResetMatch()
	if _, ok := g.Overlay(); ok {
		t.Error("overlay still playing after reset")
	}
}

func TestCelebrationEnds(t *testing.T) {
	g := newForcedGame(t, 1)
	g.Play(rps.Rock)
	run(g, 2*time.Second)
	if !g.State().Celebrating {
		t.Fatal("expected celebration")
	}
	run(g, 16*time.Second)
	if g.State().Celebrating || g.Snapshot().Particles != 0 {
		t.Error("celebration outlived its duration")
	}
}

func TestRenderText(t *testing.T) {
	g := newForcedGame(t, 3)
	g.Play(rps.Rock)
	run(g, 2*time.Second)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"YOU", "COMPUTER", "YOU WIN!", "Wins: 1 / 3", g.Config().Labels.Prompt} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestDeterminism(t *testing.T) {
	rt := core.RuntimeConfig{TickRate: 60, Seed: 12345}
	cfg := config.DefaultRPSConfig()
	cfg.Match.TargetWins = 2

	g1 := New(cfg, rt, WithOverlayLoader(missingOverlay))
	g2 := New(cfg, rt, WithOverlayLoader(missingOverlay))

	in := core.NewInputFrame()
	for i := 0; i < 1200; i++ {
		in.Clear()
		if i%150 == 0 {
			in.Set(core.Action(int(core.ActionRock) + (i/150)%3))
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}
