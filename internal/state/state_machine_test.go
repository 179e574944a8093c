package state

import (
	"errors"
	"image/color"
	"testing"

	"bullet-bunny/internal/app"
	"bullet-bunny/internal/component"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/interfaces"
)

// fakeInput replays one tick worth of input per Update call.
type fakeInput struct {
	pressed map[interfaces.Action]bool
	held    map[interfaces.Action]bool
	click   *[2]float64
	close   bool
	updates int

	next struct {
		pressed map[interfaces.Action]bool
		click   *[2]float64
	}
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed: map[interfaces.Action]bool{},
		held:    map[interfaces.Action]bool{},
	}
}

func (f *fakeInput) press(a interfaces.Action) {
	if f.next.pressed == nil {
		f.next.pressed = map[interfaces.Action]bool{}
	}
	f.next.pressed[a] = true
}

func (f *fakeInput) clickAt(x, y float64) {
	f.next.click = &[2]float64{x, y}
}

func (f *fakeInput) Update() {
	f.updates++
	f.pressed = f.next.pressed
	if f.pressed == nil {
		f.pressed = map[interfaces.Action]bool{}
	}
	f.click = f.next.click
	f.next.pressed = nil
	f.next.click = nil
}

func (f *fakeInput) JustPressed(a interfaces.Action) bool { return f.pressed[a] }
func (f *fakeInput) Held(a interfaces.Action) bool        { return f.held[a] }
func (f *fakeInput) CloseRequested() bool                 { return f.close }

func (f *fakeInput) Clicked() (float64, float64, bool) {
	if f.click == nil {
		return 0, 0, false
	}
	return f.click[0], f.click[1], true
}

type fakeStore struct {
	value int
	saves []int
	err   error
}

func (s *fakeStore) Load() int { return s.value }

func (s *fakeStore) Save(score int) error {
	s.saves = append(s.saves, score)
	if s.err != nil {
		return s.err
	}
	s.value = score
	return nil
}

type drawLog struct {
	clears  int
	sprites []interfaces.SpriteID
	rects   int
	texts   []string
}

func (d *drawLog) Clear(color.Color) { d.clears++ }
func (d *drawLog) DrawSprite(id interfaces.SpriteID, _ int, _ component.Box) {
	d.sprites = append(d.sprites, id)
}
func (d *drawLog) FillRect(component.Box, color.Color) { d.rects++ }
func (d *drawLog) DrawText(s string, _, _ float64, _ interfaces.TextSize, _ color.Color, _ interfaces.Align) {
	d.texts = append(d.texts, s)
}

const tick = 1.0 / 60

func newTestMachine(t *testing.T, highScore int) (*StateMachine, *fakeInput, *fakeStore) {
	t.Helper()
	opts := app.DefaultOptions()
	opts.Seed = 11
	in := newFakeInput()
	store := &fakeStore{value: highScore}
	sm := NewStateMachine(app.NewGame(opts), in, store)
	return sm, in, store
}

func startGame(t *testing.T, sm *StateMachine, in *fakeInput) {
	t.Helper()
	in.clickAt(config.ScreenWidth/2, config.MenuStartY+10)
	sm.Update(tick)
	if _, ok := sm.Current().(*GameState); !ok {
		t.Fatalf("Expected GameState after clicking start, got %T", sm.Current())
	}
}

func TestStartsOnMenuWithStoredHighScore(t *testing.T) {
	sm, _, _ := newTestMachine(t, 33)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Fatalf("Expected MenuState, got %T", sm.Current())
	}
	if sm.Game().Session().HighScore != 33 {
		t.Errorf("Expected high score 33, got %d", sm.Game().Session().HighScore)
	}
}

func TestMenuStartResetsSession(t *testing.T) {
	sm, in, _ := newTestMachine(t, 0)
	sm.Game().Session().Score = 9
	sm.Game().Session().Wave = 5

	startGame(t, sm, in)

	s := sm.Game().Session()
	if s.Wave != 1 || s.Score != 0 {
		t.Errorf("Expected wave 1 score 0, got wave %d score %d", s.Wave, s.Score)
	}
	if len(sm.Game().World.Enemies) != 6 {
		t.Errorf("Expected 6 enemies, got %d", len(sm.Game().World.Enemies))
	}
}

func TestMenuClickOutsideButtonsDoesNothing(t *testing.T) {
	sm, in, _ := newTestMachine(t, 0)
	in.clickAt(5, 5)
	sm.Update(tick)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Errorf("Expected to stay on the menu, got %T", sm.Current())
	}
}

func TestInstructionsRoundTrip(t *testing.T) {
	sm, in, _ := newTestMachine(t, 0)

	in.clickAt(config.ScreenWidth/2, config.MenuInstructionsY+10)
	sm.Update(tick)
	if _, ok := sm.Current().(*InstructionsState); !ok {
		t.Fatalf("Expected InstructionsState, got %T", sm.Current())
	}

	// Clicks and fire do nothing on the instructions screen.
	in.clickAt(config.ScreenWidth/2, config.MenuStartY+10)
	in.press(interfaces.ActionFire)
	sm.Update(tick)
	if _, ok := sm.Current().(*InstructionsState); !ok {
		t.Fatalf("Expected to stay on instructions, got %T", sm.Current())
	}

	in.press(interfaces.ActionCancel)
	sm.Update(tick)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Errorf("Expected MenuState after cancel, got %T", sm.Current())
	}
}

func TestMenuQuitSavesAndStops(t *testing.T) {
	sm, in, store := newTestMachine(t, 21)

	in.clickAt(config.ScreenWidth/2, config.MenuQuitY+10)
	sm.Update(tick)

	if !sm.Done() {
		t.Fatal("Expected the machine to be done")
	}
	if len(store.saves) != 1 || store.saves[0] != 21 {
		t.Errorf("Expected one save of 21, got %v", store.saves)
	}

	updates := in.updates
	sm.Update(tick)
	if in.updates != updates {
		t.Error("Expected no ticks after quitting")
	}
}

func TestCloseRequestedQuitsFromPlay(t *testing.T) {
	sm, in, store := newTestMachine(t, 0)
	startGame(t, sm, in)

	in.close = true
	sm.Update(tick)

	if !sm.Done() || len(store.saves) != 1 {
		t.Errorf("Expected quit with one save, done=%v saves=%v", sm.Done(), store.saves)
	}
}

func TestPauseToggleAndCooldown(t *testing.T) {
	sm, in, _ := newTestMachine(t, 0)
	startGame(t, sm, in)

	in.press(interfaces.ActionPause)
	sm.Update(tick)
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("Expected PauseState, got %T", sm.Current())
	}

	// A second press inside the cooldown is ignored.
	in.press(interfaces.ActionPause)
	sm.Update(tick)
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("Expected pause to hold during cooldown, got %T", sm.Current())
	}

	for i := 0; i < 30; i++ {
		sm.Update(tick)
	}
	in.press(interfaces.ActionPause)
	sm.Update(tick)
	if _, ok := sm.Current().(*GameState); !ok {
		t.Errorf("Expected to resume play after the cooldown, got %T", sm.Current())
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	sm, in, _ := newTestMachine(t, 0)
	startGame(t, sm, in)

	in.press(interfaces.ActionPause)
	sm.Update(tick)
	y := sm.Game().World.Enemies[0].Position.Y

	in.held[interfaces.ActionRight] = true
	for i := 0; i < 10; i++ {
		sm.Update(tick)
	}

	if sm.Game().World.Enemies[0].Position.Y != y {
		t.Error("Expected enemies frozen while paused")
	}
}

func TestFireAndMove(t *testing.T) {
	sm, in, _ := newTestMachine(t, 0)
	startGame(t, sm, in)
	x := sm.Game().World.Player.Position.X

	in.press(interfaces.ActionFire)
	in.held[interfaces.ActionLeft] = true
	sm.Update(tick)

	if len(sm.Game().World.Bullets) != 1 {
		t.Errorf("Expected one bullet, got %d", len(sm.Game().World.Bullets))
	}
	if sm.Game().World.Player.Position.X >= x {
		t.Errorf("Expected the player to move left from %f, got %f", x, sm.Game().World.Player.Position.X)
	}
}

func TestGameOverSavesAndReturnsToMenu(t *testing.T) {
	sm, in, store := newTestMachine(t, 0)
	startGame(t, sm, in)

	world := sm.Game().World
	world.Session.Score = 4
	world.Session.HighScore = 4
	world.Enemies[0].Position.Y = world.FieldHeight - world.Enemies[0].Height
	sm.Update(tick)

	if _, ok := sm.Current().(*GameOverState); !ok {
		t.Fatalf("Expected GameOverState, got %T", sm.Current())
	}
	if len(store.saves) != 1 || store.saves[0] != 4 {
		t.Errorf("Expected the high score saved on game over, got %v", store.saves)
	}

	sm.Update(tick)
	if _, ok := sm.Current().(*GameOverState); !ok {
		t.Fatalf("Expected to wait for acknowledgement, got %T", sm.Current())
	}

	in.clickAt(1, 1)
	sm.Update(tick)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Errorf("Expected MenuState after click, got %T", sm.Current())
	}
}

func TestSaveErrorIsNotFatal(t *testing.T) {
	sm, in, store := newTestMachine(t, 0)
	store.err = errors.New("disk full")

	in.clickAt(config.ScreenWidth/2, config.MenuQuitY+10)
	sm.Update(tick)

	if !sm.Done() {
		t.Error("Expected quit to complete despite the save error")
	}
}

func TestDeltaTimeIsClamped(t *testing.T) {
	sm, in, _ := newTestMachine(t, 0)
	startGame(t, sm, in)
	world := sm.Game().World
	y := world.Enemies[0].Position.Y
	speed := world.Enemies[0].Speed()

	sm.Update(10)

	moved := world.Enemies[0].Position.Y - y
	if moved > speed*config.MaxDeltaTime+1e-9 {
		t.Errorf("Expected at most %f of movement, got %f", speed*config.MaxDeltaTime, moved)
	}

	y = world.Enemies[0].Position.Y
	sm.Update(-1)
	if world.Enemies[0].Position.Y != y {
		t.Error("Expected a negative delta to be treated as zero")
	}
}

func TestGameDrawOrder(t *testing.T) {
	sm, in, _ := newTestMachine(t, 0)
	startGame(t, sm, in)
	in.press(interfaces.ActionFire)
	sm.Update(tick)

	d := &drawLog{}
	sm.Draw(d)

	if d.clears != 1 {
		t.Errorf("Expected one clear, got %d", d.clears)
	}
	if len(d.sprites) != 1+len(sm.Game().World.Enemies) || d.sprites[0] != interfaces.SpritePlayer {
		t.Errorf("Expected the player then every enemy, got %v", d.sprites)
	}
	if d.rects != 1 {
		t.Errorf("Expected one bullet rect, got %d", d.rects)
	}
	if len(d.texts) != 3 || d.texts[0] != "Score: 0" {
		t.Errorf("Expected the HUD, got %v", d.texts)
	}
}

func TestMenuDraw(t *testing.T) {
	sm, _, _ := newTestMachine(t, 0)
	d := &drawLog{}
	sm.Draw(d)

	want := []string{"BULLET BUNNY", "START GAME", "INSTRUCTIONS", "QUIT"}
	if len(d.texts) != len(want) {
		t.Fatalf("Expected %v, got %v", want, d.texts)
	}
	for i := range want {
		if d.texts[i] != want[i] {
			t.Errorf("Text %d: expected %q, got %q", i, want[i], d.texts[i])
		}
	}
}
