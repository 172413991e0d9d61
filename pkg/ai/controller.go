// Package ai 电脑玩家：行为树决策 + 每帧沿 BFS 路径移动
package ai

import (
	"math/rand"
	"time"

	"bomby/pkg/ai/bt"
	"bomby/pkg/core"
)

type Controller struct {
	PlayerID int
	rnd      *rand.Rand
	config   *Config

	thinkCounter int
	stallFrames  int // 失误时发呆的剩余帧数

	blackboard Blackboard
	tree       bt.Node[*Blackboard]
	danger     DangerField
}

// NewController 创建 AI 控制器，config 为 nil 时使用普通难度
func NewController(playerID int, config *Config) *Controller {
	return NewControllerWithSeed(playerID, config, time.Now().UnixNano()+int64(playerID))
}

// NewControllerWithSeed 使用固定随机种子创建控制器，便于复现
func NewControllerWithSeed(playerID int, config *Config, seed int64) *Controller {
	if config == nil {
		config = &ConfigNormal
	}
	rnd := rand.New(rand.NewSource(seed))

	c := &Controller{
		PlayerID: playerID,
		rnd:      rnd,
		config:   config,
	}
	c.blackboard = Blackboard{
		RNG:       rnd,
		Danger:    &c.danger,
		Config:    config,
		WanderDir: wanderNone,
		LastBombs: -1,
	}

	c.tree = &bt.Selector[*Blackboard]{Children: []bt.Node[*Blackboard]{
		&bt.Sequence[*Blackboard]{Children: []bt.Node[*Blackboard]{
			&bt.Condition[*Blackboard]{Check: condInDanger},
			&bt.Action[*Blackboard]{Do: actFindSafe},
			&bt.Action[*Blackboard]{Do: actMoveToSafe},
		}},
		&bt.Sequence[*Blackboard]{Children: []bt.Node[*Blackboard]{
			&bt.Condition[*Blackboard]{Check: condHasBombCapacity},
			&bt.Action[*Blackboard]{Do: actFindTarget},
			&bt.Action[*Blackboard]{Do: actPreCheckEscape},
			&bt.Action[*Blackboard]{Do: actMoveToTarget},
			&bt.Action[*Blackboard]{Do: actPlaceBomb},
		}},
		&bt.Action[*Blackboard]{Do: actWander},
	}}
	return c
}

// Decide 计算本帧的输入。玩家不存在（已被淘汰）时返回空输入
func (c *Controller) Decide(game *core.Game) core.Input {
	self := game.Player(c.PlayerID)
	if self == nil {
		return core.Input{}
	}

	bb := &c.blackboard
	bb.ResetFrame(game, self)
	c.danger.Update(game)

	inDanger := condInDanger(bb)
	force := inDanger != bb.LastInDanger || len(game.Bombs) != bb.LastBombs
	bb.LastInDanger = inDanger
	bb.LastBombs = len(game.Bombs)

	if c.stallFrames > 0 && !force {
		c.stallFrames--
		return core.Input{}
	}
	c.stallFrames = 0

	if bb.Goal != nil && *bb.Goal == self.Cell() && centred(self, *bb.Goal) {
		bb.Goal = nil
	}

	c.thinkCounter++
	if force || bb.Goal == nil || c.thinkCounter >= c.config.ThinkIntervalFrames {
		c.think()
	}

	if bb.PlaceBomb {
		return core.Input{Bomb: true}
	}
	return c.follow()
}

func (c *Controller) think() {
	bb := &c.blackboard
	c.thinkCounter = 0
	bb.Goal = nil
	bb.Target = nil

	_ = c.tree.Tick(bb)

	if c.config.MistakeRate <= 0 || c.rnd.Float64() >= c.config.MistakeRate {
		return
	}
	// 失误：发呆一会儿，或者随便走一步
	bb.PlaceBomb = false
	switch c.rnd.Intn(2) {
	case 0:
		bb.Goal = nil
		c.stallFrames = c.config.ThinkIntervalFrames / 2
	case 1:
		cell := bb.Self.Cell()
		if dirs := wanderDirections(bb, cell, false); len(dirs) > 0 {
			next, _ := wanderStep(bb, cell, dirs[c.rnd.Intn(len(dirs))], false)
			bb.setGoal(next, false)
		}
	}
}

// follow 沿路径走向 Goal 的下一格
func (c *Controller) follow() core.Input {
	bb := &c.blackboard
	if bb.Goal == nil {
		return core.Input{}
	}
	cell := bb.Self.Cell()
	goal := *bb.Goal
	if cell == goal {
		return steer(bb.Self, goal)
	}

	path, ok := searchPath(cell, func(n core.GridCell) bool { return n == goal }, bb.passable(bb.Avoid))
	if !ok || len(path) == 0 {
		bb.Goal = nil
		return core.Input{}
	}
	return steer(bb.Self, path[0])
}

// Config 当前配置
func (c *Controller) Config() *Config {
	return c.config
}

// SetConfig 切换难度
func (c *Controller) SetConfig(config *Config) {
	if config == nil {
		return
	}
	c.config = config
	c.blackboard.Config = config
}
