package server

import bombyv1 "bomby/api/gen/bomby/v1"

type EventKind int

const (
	EventUnknown EventKind = iota
	EventJoin
	EventInput
	EventPing
	EventPong
	EventReconnect
)

func (k EventKind) String() string {
	switch k {
	case EventJoin:
		return "join"
	case EventInput:
		return "input"
	case EventPing:
		return "ping"
	case EventPong:
		return "pong"
	case EventReconnect:
		return "reconnect"
	}
	return "unknown"
}

type InputData struct {
	FrameID int32
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Bomb    bool
}

type JoinEvent struct {
	PlayerName string
	Character  bombyv1.CharacterType
	RoomID     string // 房间 ID，空字符串表示自动分配到默认房间
}

type InputEvent struct {
	PlayerID int32
	Seq      int32
	Inputs   []InputData
}

type PingEvent struct {
	ClientTime int64
}

type PongEvent struct {
	ClientTime  int64
	ServerTime  int64
	ServerFrame int32
}

type ReconnectEvent struct {
	SessionToken string
}

type ServerEvent struct {
	Kind      EventKind
	Type      bombyv1.MessageType // 原始消息类型，Kind 为 EventUnknown 时用于日志
	Join      *JoinEvent
	Input     *InputEvent
	Ping      *PingEvent
	Pong      *PongEvent
	Reconnect *ReconnectEvent
}
