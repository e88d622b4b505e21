package game

import (
	"fmt"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
)

// State of a single game
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

// Settings holds the rules a Game is constructed with
type Settings struct {
	Grid     types.Grid
	TickRate int // simulation steps per second
}

// DefaultSettings is the classic 16x16 field at 5 steps per second
func DefaultSettings() Settings {
	return Settings{
		Grid:     types.Grid{Width: 16, Height: 16},
		TickRate: 5,
	}
}

func (s Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// Controls is polled once per frame
type Controls interface {
	DirectionHeld(dir types.Direction) bool
	RestartHeld() bool
}

// Presses is implemented by controls that report discrete key presses.
// Turns returns the directions pressed since the last frame, oldest first.
type Presses interface {
	Turns() []types.Direction
}

// Sound is told when food is eaten. Playback must not block.
type Sound interface {
	PlayEat()
}

// Key polling order; the first legal held direction wins
var pollOrder = []types.Direction{types.Up, types.Right, types.Left, types.Down}

type Game struct {
	ID         string
	settings   Settings
	snake      *entity.Snake
	commands   *entity.CommandQueue
	apple      types.Point
	score      int
	state      State
	reason     string
	lastTick   time.Time
	startTime  time.Time
	endTime    time.Time
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	sound      Sound
}

func NewGame(settings Settings, food *manager.FoodManager, collisions *manager.CollisionManager, sound Sound) (*Game, error) {
	if settings.TickRate <= 0 {
		return nil, fmt.Errorf("invalid tick rate %d", settings.TickRate)
	}

	snake := entity.DefaultSnake()
	g := &Game{
		ID:         uuid.New().String(),
		settings:   settings,
		snake:      snake,
		commands:   entity.NewCommandQueue(snake.Direction),
		state:      Playing,
		food:       food,
		collisions: collisions,
		sound:      sound,
	}

	apple, err := food.Spawn(snake.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to place first apple: %w", err)
	}
	g.apple = apple

	return g, nil
}

// QueueTurn queues dir unless it reverses the last queued direction
func (g *Game) QueueTurn(dir types.Direction) bool {
	if dir == g.commands.Last().Opposite() {
		return false
	}
	g.commands.Push(dir)
	return true
}

// PollInput queues every press in order when in reports presses. Otherwise
// it queues the first held direction that does not reverse the last queued one.
func (g *Game) PollInput(in Controls) {
	if p, ok := in.(Presses); ok {
		for _, dir := range p.Turns() {
			g.QueueTurn(dir)
		}
		return
	}

	for _, dir := range pollOrder {
		if in.DirectionHeld(dir) && g.QueueTurn(dir) {
			return
		}
	}
}

// Tick polls input every call and steps the simulation once the tick
// interval has elapsed since the last step.
func (g *Game) Tick(now time.Time, in Controls) {
	if g.state == GameOver {
		return
	}
	if g.startTime.IsZero() {
		g.startTime = now
	}

	g.PollInput(in)

	if now.Sub(g.lastTick) <= g.settings.TickInterval() {
		return
	}

	if g.snake.Head() == g.apple {
		g.sound.PlayEat()
		g.snake.Fed = true
		g.score++
		apple, err := g.food.Spawn(g.snake.Body)
		if err != nil {
			g.end(now, err.Error())
			return
		}
		g.apple = apple
	}

	g.snake.CommitDirection(g.commands)
	g.snake.Advance()

	if collision := g.collisions.Check(g.snake); collision != types.NoCollision {
		g.end(now, collision.String()+" collision")
		return
	}

	g.snake.Fed = false
	g.lastTick = now
}

func (g *Game) end(now time.Time, reason string) {
	g.state = GameOver
	g.reason = reason
	g.endTime = now
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Over() bool {
	return g.state == GameOver
}

// Reason describes why the game ended
func (g *Game) Reason() string {
	return g.reason
}

func (g *Game) Apple() types.Point {
	return g.apple
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Head() types.Point {
	return g.snake.Head()
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

func (g *Game) Grid() types.Grid {
	return g.settings.Grid
}

// Duration is the play time up to now, or up to the end of the game
func (g *Game) Duration(now time.Time) time.Duration {
	if g.startTime.IsZero() {
		return 0
	}
	if g.state == GameOver {
		return g.endTime.Sub(g.startTime)
	}
	return now.Sub(g.startTime)
}
