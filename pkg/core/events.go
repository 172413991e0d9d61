package core

// Cue 声音提示类型
type Cue int

const (
	CueBombFuse Cue = iota + 1
	CueBombExplosion
	CuePlayerDeath
)

func (c Cue) String() string {
	switch c {
	case CueBombFuse:
		return "bomb_fuse"
	case CueBombExplosion:
		return "bomb_explosion"
	case CuePlayerDeath:
		return "player_death"
	}
	return "unknown"
}

// Feedback 反馈接收者（镜头震动、音效）。只发不收，不保证被消费
type Feedback interface {
	EmitTrauma(magnitude float32)
	EmitCue(cue Cue)
}

// FeedbackEvent 一条反馈事件，Cue 为 0 表示镜头震动
type FeedbackEvent struct {
	Cue    Cue
	Trauma float32
}

// IsTrauma 是否是镜头震动事件
func (e FeedbackEvent) IsTrauma() bool {
	return e.Cue == 0
}

// EventQueue 按顺序缓存反馈事件，每帧取出一次
type EventQueue struct {
	events []FeedbackEvent
}

func (q *EventQueue) EmitTrauma(magnitude float32) {
	q.events = append(q.events, FeedbackEvent{Trauma: magnitude})
}

func (q *EventQueue) EmitCue(cue Cue) {
	q.events = append(q.events, FeedbackEvent{Cue: cue})
}

// Drain 取出并清空所有事件
func (q *EventQueue) Drain() []FeedbackEvent {
	events := q.events
	q.events = nil
	return events
}

// Len 当前缓存的事件数
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Replay 把事件重新发送给另一个接收者
func Replay(events []FeedbackEvent, sink Feedback) {
	for _, ev := range events {
		if ev.IsTrauma() {
			sink.EmitTrauma(ev.Trauma)
		} else {
			sink.EmitCue(ev.Cue)
		}
	}
}

// Fanout 把事件广播给多个接收者，调用顺序不做保证
type Fanout []Feedback

func (f Fanout) EmitTrauma(magnitude float32) {
	for _, sink := range f {
		sink.EmitTrauma(magnitude)
	}
}

func (f Fanout) EmitCue(cue Cue) {
	for _, sink := range f {
		sink.EmitCue(cue)
	}
}
