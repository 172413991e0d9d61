package core

import (
	"errors"
	"time"
)

// ErrNoSpawnPoint 关卡没有空闲的出生点
var ErrNoSpawnPoint = errors.New("没有可用的出生点")

// Game 游戏状态（纯逻辑，不包含渲染）。
// 单线程使用：所有方法都应在同一个 goroutine 中调用，跨 goroutine 读取请用 Snapshot。
type Game struct {
	Map        *GameMap     // 默认关卡提供者，自定义 Tiles 时可能为 nil
	Tiles      TileProvider // 核心逻辑只通过它访问地图
	Players    []*Player
	Bombs      []*Bomb
	Explosions []*ExplosionMarker
	Eliminated []int // 按淘汰顺序记录的玩家 ID
	Left       []int // 本局中途离开的玩家 ID，计入参赛人数

	Feedback Feedback

	FuseDuration time.Duration
	BlastRadius  int

	CurrentFrame int32

	queue       *EventQueue
	nextBombID  int
	tileChanges []TileChange
	warned      map[GridCell]struct{}
}

// NewGame 使用地图创建新游戏，m 为 nil 时使用默认关卡
func NewGame(m *GameMap) *Game {
	if m == nil {
		m = NewGameMap()
	}
	g := NewGameWithTiles(m)
	g.Map = m
	return g
}

// NewGameWithTiles 使用任意关卡提供者创建新游戏
func NewGameWithTiles(tiles TileProvider) *Game {
	queue := &EventQueue{}
	return &Game{
		Tiles:        tiles,
		Players:      make([]*Player, 0),
		Bombs:        make([]*Bomb, 0),
		Explosions:   make([]*ExplosionMarker, 0),
		Feedback:     queue,
		FuseDuration: BombFuseDuration,
		BlastRadius:  BlastRadius,
		queue:        queue,
		warned:       make(map[GridCell]struct{}),
	}
}

// AddPlayer 添加玩家
func (g *Game) AddPlayer(player *Player) {
	g.Players = append(g.Players, player)
}

// SpawnPlayer 在第一个未被占用的出生点创建玩家
func (g *Game) SpawnPlayer(id int, charType CharacterType) (*Player, error) {
	if g.Map == nil {
		return nil, ErrNoSpawnPoint
	}
	for _, spawn := range g.Map.Spawns {
		if g.playerAt(spawn) != nil {
			continue
		}
		p := NewPlayer(id, spawn, charType)
		g.AddPlayer(p)
		return p, nil
	}
	return nil, ErrNoSpawnPoint
}

// Player 根据 ID 获取玩家，不存在或已被淘汰时返回 nil
func (g *Game) Player(id int) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RemovePlayer 玩家中途离开（不算淘汰，但仍算这一局的参赛者）
func (g *Game) RemovePlayer(id int) bool {
	if g.dropPlayer(id) {
		g.Left = append(g.Left, id)
		return true
	}
	return false
}

// CancelSpawn 撤销刚刚生成、还没有真正加入的玩家，不留任何记录
func (g *Game) CancelSpawn(id int) bool {
	return g.dropPlayer(id)
}

func (g *Game) dropPlayer(id int) bool {
	for i, p := range g.Players {
		if p.ID == id {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			return true
		}
	}
	return false
}

func (g *Game) playerAt(cell GridCell) *Player {
	for _, p := range g.Players {
		if p.Cell() == cell {
			return p
		}
	}
	return nil
}

func (g *Game) eliminate(id int) {
	if g.dropPlayer(id) {
		g.Eliminated = append(g.Eliminated, id)
	}
}

// Step 推进一帧。系统按固定顺序执行：
// 放置炸弹 -> 阻挡快照 -> 碰撞与移动 -> 引信与爆炸 -> 爆炸效果衰减。
func (g *Game) Step(dt time.Duration, input InputProvider) {
	g.spawnBombs(input)

	blocked := g.BlockedCells()
	g.movePlayers(dt, input, blocked)

	// 本帧新产生的爆炸效果不参与衰减
	aged := len(g.Explosions)
	g.updateBombs(dt)
	g.decayExplosions(dt, aged)

	g.CurrentFrame++
}

// BlockedCells 本帧的阻挡格子快照：墙壁、砖块和所有炸弹所在格子
func (g *Game) BlockedCells() *BlockedCells {
	var blocked *BlockedCells
	if g.Map != nil {
		blocked = NewBlockedCells(g.Map.Width, g.Map.Height)
	} else {
		blocked = NewBlockedCells(0, 0)
	}

	for cell, tile := range g.Tiles.AllTiles() {
		if tile == TileUnknown {
			g.warnUnclassified(cell, ErrUnclassifiedTile)
			continue
		}
		if tile.Blocking() {
			blocked.Add(cell)
		}
	}
	for _, b := range g.Bombs {
		blocked.Add(b.Cell())
	}
	return blocked
}

func (g *Game) movePlayers(dt time.Duration, input InputProvider, blocked Blocker) {
	seconds := dt.Seconds()
	for _, p := range g.Players {
		intent := input.MovementIntent(p.ID)
		delta := intent.Scale(p.Speed * seconds)
		delta = ResolveDisplacement(delta, p.Pos, p.Box, blocked)

		p.Pos = p.Pos.Add(delta)
		if seconds > 0 {
			p.Velocity = delta.Scale(1 / seconds)
		}
		p.IsMoving = delta.X != 0 || delta.Y != 0
		p.updateDirection(intent)
	}
}

// DrainEvents 取出本帧产生的反馈事件。Feedback 被替换后队列不再收到新事件
func (g *Game) DrainEvents() []FeedbackEvent {
	if g.queue == nil {
		return nil
	}
	return g.queue.Drain()
}

// DrainTileChanges 取出上次调用以来的地图变化
func (g *Game) DrainTileChanges() []TileChange {
	changes := g.tileChanges
	g.tileChanges = nil
	return changes
}

// IsGameOver 检查游戏是否结束，返回获胜者 ID（没有获胜者时为 -1）。
// 单人时只有被淘汰才结束，多人时剩 0 或 1 人结束。中途离开的玩家也计入人数。
func (g *Game) IsGameOver() (bool, int) {
	total := len(g.Players) + len(g.Eliminated) + len(g.Left)
	if total == 0 {
		return false, -1
	}

	alive := len(g.Players)
	if total == 1 {
		return alive == 0, -1
	}
	if alive == 1 {
		return true, g.Players[0].ID
	}
	return alive == 0, -1
}
