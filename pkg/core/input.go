package core

// Input 表示一帧内玩家的按键状态
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Bomb  bool
}

// Direction 返回归一化的移动方向，斜向移动不会更快
func (in Input) Direction() Vec2 {
	var v Vec2
	if in.Up {
		v.Y--
	}
	if in.Down {
		v.Y++
	}
	if in.Left {
		v.X--
	}
	if in.Right {
		v.X++
	}
	return v.Normalize()
}

// InputProvider 每帧查询玩家意图
type InputProvider interface {
	// MovementIntent 归一化的移动方向
	MovementIntent(playerID int) Vec2
	// BombJustPressed 放置炸弹键是否在本帧按下（按下沿触发）
	BombJustPressed(playerID int) bool
}

// InputState 记录每个玩家本帧与上一帧的按键，实现 InputProvider。
// 按键状态一直保持到下一次 Set。
type InputState struct {
	current  map[int]Input
	previous map[int]Input
}

// NewInputState 创建输入状态
func NewInputState() *InputState {
	return &InputState{
		current:  make(map[int]Input),
		previous: make(map[int]Input),
	}
}

// Set 设置玩家本帧的按键
func (s *InputState) Set(playerID int, in Input) {
	s.current[playerID] = in
}

// Get 玩家本帧的按键
func (s *InputState) Get(playerID int) Input {
	return s.current[playerID]
}

// Remove 删除玩家的输入记录
func (s *InputState) Remove(playerID int) {
	delete(s.current, playerID)
	delete(s.previous, playerID)
}

// Advance 帧结束时调用，本帧按键成为上一帧按键
func (s *InputState) Advance() {
	for id, in := range s.current {
		s.previous[id] = in
	}
}

func (s *InputState) MovementIntent(playerID int) Vec2 {
	return s.current[playerID].Direction()
}

func (s *InputState) BombJustPressed(playerID int) bool {
	return s.current[playerID].Bomb && !s.previous[playerID].Bomb
}
