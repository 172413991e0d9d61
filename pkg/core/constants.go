package core

import "time"

// 屏幕和地图配置
const (
	TileSize     = 32
	MapWidth     = 20
	MapHeight    = 15
	ScreenWidth  = MapWidth * TileSize
	ScreenHeight = MapHeight * TileSize
)

// 游戏帧率
const (
	TPS           = 60
	FrameDuration = time.Second / TPS
	FrameSeconds  = 1.0 / TPS
)

// 玩家配置
const (
	PlayerSpeed      = 100.0 // 世界单位/秒
	PlayerHalfExtent = 12.0  // 碰撞盒半边长，小于半个格子
)

// 炸弹配置
const (
	MaxBombsPerPlayer       = 2
	BombFuseDuration        = 1500 * time.Millisecond
	BlastRadius             = 1
	BombTrauma              = float32(0.3)
	ExplosionMarkerDuration = 600 * time.Millisecond
)
