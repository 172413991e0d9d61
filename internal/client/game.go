package client

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"bomby/internal/client/fx"
	"bomby/pkg/ai"
	"bomby/pkg/core"
)

// localHuman 本机键盘控制的玩家
type localHuman struct {
	id     int
	scheme ControlScheme
}

// LocalGame 单机双人游戏（Ebiten 游戏循环），可以加入电脑玩家
type LocalGame struct {
	level      *core.GameMap
	character  core.CharacterType
	botCount   int
	game       *core.Game
	input      *core.InputState
	humans     []localHuman
	bots       []*ai.Controller
	renderer   *Renderer
	audio      *CuePlayer
	feedback   core.Fanout
	snap       core.Snapshot
	gameOver   bool
	winnerID   int
	lastUpdate time.Time
}

// NewLocalGame 创建单机游戏。level 为 nil 时使用默认关卡，
// character 是 1 号玩家的角色，其余玩家依次分配
func NewLocalGame(level *core.GameMap, character core.CharacterType, bots int, audio *CuePlayer) (*LocalGame, error) {
	if level == nil {
		level = core.NewGameMap()
	}
	g := &LocalGame{
		level:     level,
		character: character,
		botCount:  bots,
		audio:     audio,
		renderer:  NewRenderer(fx.NewCamera(time.Now().UnixNano()), 0, 1),
	}
	g.feedback = core.Fanout{g.renderer.Camera}
	if audio != nil {
		g.feedback = append(g.feedback, audio)
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset 用原始关卡重新开一局
func (g *LocalGame) reset() error {
	g.game = core.NewGame(g.level.Clone())
	g.input = core.NewInputState()
	g.humans = g.humans[:0]
	g.bots = g.bots[:0]
	g.gameOver = false
	g.winnerID = -1

	chars := characterOrder(g.character)
	for i, scheme := range []ControlScheme{ControlWASD, ControlArrow} {
		if _, err := g.game.SpawnPlayer(i, chars[i]); err != nil {
			return fmt.Errorf("创建玩家 %d 失败: %w", i, err)
		}
		g.humans = append(g.humans, localHuman{id: i, scheme: scheme})
		log.Printf("玩家 %d 使用 %s", i, scheme)
	}
	for i := range g.botCount {
		id := len(g.humans) + i
		if _, err := g.game.SpawnPlayer(id, chars[id%len(chars)]); err != nil {
			return fmt.Errorf("创建电脑玩家 %d 失败: %w", id, err)
		}
		g.bots = append(g.bots, ai.NewController(id, &ai.ConfigNormal))
	}
	g.snap = g.game.Snapshot()
	g.lastUpdate = time.Now()
	return nil
}

// characterOrder 把选中的角色排在第一位
func characterOrder(first core.CharacterType) []core.CharacterType {
	order := []core.CharacterType{first}
	for _, c := range core.Characters {
		if c != first {
			order = append(order, c)
		}
	}
	return order
}

// Update 固定步长推进一帧
func (g *LocalGame) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	if g.audio != nil {
		g.audio.Update()
	}

	if g.gameOver {
		g.renderer.Update(g.snap, dt)
		if restartPressed() {
			return g.reset()
		}
		return nil
	}

	for _, h := range g.humans {
		g.input.Set(h.id, ReadInput(h.scheme))
	}
	for _, bot := range g.bots {
		g.input.Set(bot.PlayerID, bot.Decide(g.game))
	}

	g.game.Step(core.FrameDuration, g.input)
	g.input.Advance()
	g.game.DrainTileChanges()
	core.Replay(g.game.DrainEvents(), g.feedback)

	for _, id := range g.game.Eliminated {
		g.input.Remove(id)
	}

	g.snap = g.game.Snapshot()
	g.renderer.Update(g.snap, dt)

	if over, winner := g.game.IsGameOver(); over {
		g.gameOver = true
		g.winnerID = winner
		log.Printf("游戏结束: %s", gameOverText(winner))
	}
	return nil
}

// Draw 绘制游戏画面
func (g *LocalGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snap)
	drawHUD(screen, g.snap, "")
	if g.gameOver {
		drawBanner(screen, gameOverText(g.winnerID), "press R to restart")
	}
}

// Layout 逻辑尺寸跟随地图
func (g *LocalGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.level)
}
