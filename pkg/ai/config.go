package ai

// Config 定义 AI 的行为参数，用于控制 AI 的智力水平
type Config struct {
	// ThinkIntervalFrames 两次完整决策之间的最大帧数，值越小 AI 反应越快。
	// 到达目标、炸弹数量变化或危险状态变化时会立即重新决策
	ThinkIntervalFrames int

	// MistakeRate 每次决策的失误概率 (0.0-1.0)
	MistakeRate float64

	// PreferBricks 是否优先炸砖块而非追击敌人
	PreferBricks bool

	// WanderCells 游荡时沿同一方向最多走的格子数
	WanderCells int
}

// 预设配置：普通难度
var ConfigNormal = Config{
	ThinkIntervalFrames: 30,
	MistakeRate:         0.05,
	PreferBricks:        true, // 优先炸砖块开路
	WanderCells:         3,
}

// 预设配置：困难难度
var ConfigHard = Config{
	ThinkIntervalFrames: 12,
	MistakeRate:         0.0,
	PreferBricks:        false, // 敌人优先
	WanderCells:         2,
}
