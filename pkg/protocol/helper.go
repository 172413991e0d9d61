package protocol

//go:generate protoc -I ../../api/proto --go_out=../../api/gen --go_opt=paths=source_relative bomby/v1/game.proto

import (
	"errors"
	"fmt"

	bombyv1 "bomby/api/gen/bomby/v1"

	"google.golang.org/protobuf/proto"
)

var (
	// ErrMalformed 数据不是合法的消息
	ErrMalformed = errors.New("消息格式错误")
	// ErrUnexpectedType Packet 中不是期望的消息类型
	ErrUnexpectedType = errors.New("消息类型不匹配")
)

// MessageTypeOf 返回消息在 Packet 中使用的类型
func MessageTypeOf(m proto.Message) (bombyv1.MessageType, error) {
	switch m.(type) {
	case *bombyv1.JoinRequest:
		return bombyv1.MessageType_MESSAGE_TYPE_JOIN_REQUEST, nil
	case *bombyv1.JoinResponse:
		return bombyv1.MessageType_MESSAGE_TYPE_JOIN_RESPONSE, nil
	case *bombyv1.ClientInput:
		return bombyv1.MessageType_MESSAGE_TYPE_CLIENT_INPUT, nil
	case *bombyv1.ServerState:
		return bombyv1.MessageType_MESSAGE_TYPE_SERVER_STATE, nil
	case *bombyv1.GameOver:
		return bombyv1.MessageType_MESSAGE_TYPE_GAME_OVER, nil
	case *bombyv1.PlayerLeave:
		return bombyv1.MessageType_MESSAGE_TYPE_PLAYER_LEAVE, nil
	case *bombyv1.Ping:
		return bombyv1.MessageType_MESSAGE_TYPE_PING, nil
	case *bombyv1.Pong:
		return bombyv1.MessageType_MESSAGE_TYPE_PONG, nil
	case *bombyv1.ReconnectRequest:
		return bombyv1.MessageType_MESSAGE_TYPE_RECONNECT_REQUEST, nil
	case *bombyv1.ReconnectResponse:
		return bombyv1.MessageType_MESSAGE_TYPE_RECONNECT_RESPONSE, nil
	}
	return bombyv1.MessageType_MESSAGE_TYPE_UNSPECIFIED, fmt.Errorf("%w: %T", ErrUnexpectedType, m)
}

// ========== 辅助构造方法 ==========

// NewPacket 把消息包装成 Packet
func NewPacket(m proto.Message) (*bombyv1.Packet, error) {
	t, err := MessageTypeOf(m)
	if err != nil {
		return nil, err
	}
	payload, err := proto.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("编码 %s 失败: %w", t, err)
	}
	return &bombyv1.Packet{Type: t, Payload: payload}, nil
}

// NewClientInputPacket 构造单帧输入消息包
func NewClientInputPacket(seq, frameID int32, up, down, left, right, bomb bool) (*bombyv1.Packet, error) {
	return NewPacket(&bombyv1.ClientInput{
		Seq: seq,
		Inputs: []*bombyv1.InputData{{
			FrameId: frameID,
			Up:      up,
			Down:    down,
			Left:    left,
			Right:   right,
			Bomb:    bomb,
		}},
	})
}

// NewJoinRequestPacket 构造加入请求消息包
func NewJoinRequestPacket(playerName string, character bombyv1.CharacterType, roomID string) (*bombyv1.Packet, error) {
	return NewPacket(&bombyv1.JoinRequest{PlayerName: playerName, Character: character, RoomId: roomID})
}

// NewJoinFailedPacket 构造加入失败消息包
func NewJoinFailedPacket(errorMessage string) (*bombyv1.Packet, error) {
	return NewPacket(&bombyv1.JoinResponse{Success: false, PlayerId: -1, ErrorMessage: errorMessage})
}

// NewPingPacket 构造心跳请求
func NewPingPacket(clientTime int64) (*bombyv1.Packet, error) {
	return NewPacket(&bombyv1.Ping{ClientTime: clientTime})
}

// NewPongPacket 构造心跳响应
func NewPongPacket(clientTime, serverTime int64, serverFrame int32) (*bombyv1.Packet, error) {
	return NewPacket(&bombyv1.Pong{ClientTime: clientTime, ServerTime: serverTime, ServerFrame: serverFrame})
}

// NewGameOverPacket 构造游戏结束消息包
func NewGameOverPacket(frameID, winnerID int32) (*bombyv1.Packet, error) {
	return NewPacket(&bombyv1.GameOver{FrameId: frameID, WinnerId: winnerID})
}

// NewPlayerLeavePacket 构造玩家离开消息包
func NewPlayerLeavePacket(playerID int32) (*bombyv1.Packet, error) {
	return NewPacket(&bombyv1.PlayerLeave{PlayerId: playerID})
}

// NewReconnectRequestPacket 构造重连请求
func NewReconnectRequestPacket(token string) (*bombyv1.Packet, error) {
	return NewPacket(&bombyv1.ReconnectRequest{SessionToken: token})
}

// ========== 序列化与反序列化 ==========

// MarshalPacket 将 Packet 转换为字节切片
func MarshalPacket(pkt *bombyv1.Packet) ([]byte, error) {
	return proto.Marshal(pkt)
}

// Marshal 直接把消息编码成 Packet 字节
func Marshal(m proto.Message) ([]byte, error) {
	pkt, err := NewPacket(m)
	if err != nil {
		return nil, err
	}
	return MarshalPacket(pkt)
}

// UnmarshalPacket 将字节切片转换为 Packet
func UnmarshalPacket(data []byte) (*bombyv1.Packet, error) {
	pkt := &bombyv1.Packet{}
	if err := proto.Unmarshal(data, pkt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return pkt, nil
}

// ========== 消息解析辅助 ==========

func parseInto[T proto.Message](pkt *bombyv1.Packet, m T) (T, error) {
	var zero T
	want, err := MessageTypeOf(m)
	if err != nil {
		return zero, err
	}
	if pkt.GetType() != want {
		return zero, fmt.Errorf("%w: 期望 %s，收到 %s", ErrUnexpectedType, want, pkt.GetType())
	}
	if err := proto.Unmarshal(pkt.GetPayload(), m); err != nil {
		return zero, fmt.Errorf("%w: 解析 %s 失败: %w", ErrMalformed, want, err)
	}
	return m, nil
}

// ParseJoinRequest 从 Packet 中解析 JoinRequest
func ParseJoinRequest(pkt *bombyv1.Packet) (*bombyv1.JoinRequest, error) {
	return parseInto(pkt, &bombyv1.JoinRequest{})
}

// ParseJoinResponse 从 Packet 中解析 JoinResponse
func ParseJoinResponse(pkt *bombyv1.Packet) (*bombyv1.JoinResponse, error) {
	return parseInto(pkt, &bombyv1.JoinResponse{})
}

// ParseClientInput 从 Packet 中解析 ClientInput
func ParseClientInput(pkt *bombyv1.Packet) (*bombyv1.ClientInput, error) {
	return parseInto(pkt, &bombyv1.ClientInput{})
}

// ParseServerState 从 Packet 中解析 ServerState
func ParseServerState(pkt *bombyv1.Packet) (*bombyv1.ServerState, error) {
	return parseInto(pkt, &bombyv1.ServerState{})
}

// ParseGameOver 从 Packet 中解析 GameOver
func ParseGameOver(pkt *bombyv1.Packet) (*bombyv1.GameOver, error) {
	return parseInto(pkt, &bombyv1.GameOver{})
}

// ParsePlayerLeave 从 Packet 中解析 PlayerLeave
func ParsePlayerLeave(pkt *bombyv1.Packet) (*bombyv1.PlayerLeave, error) {
	return parseInto(pkt, &bombyv1.PlayerLeave{})
}

// ParsePing 从 Packet 中解析 Ping
func ParsePing(pkt *bombyv1.Packet) (*bombyv1.Ping, error) {
	return parseInto(pkt, &bombyv1.Ping{})
}

// ParsePong 从 Packet 中解析 Pong
func ParsePong(pkt *bombyv1.Packet) (*bombyv1.Pong, error) {
	return parseInto(pkt, &bombyv1.Pong{})
}

// ParseReconnectRequest 从 Packet 中解析 ReconnectRequest
func ParseReconnectRequest(pkt *bombyv1.Packet) (*bombyv1.ReconnectRequest, error) {
	return parseInto(pkt, &bombyv1.ReconnectRequest{})
}

// ParseReconnectResponse 从 Packet 中解析 ReconnectResponse
func ParseReconnectResponse(pkt *bombyv1.Packet) (*bombyv1.ReconnectResponse, error) {
	return parseInto(pkt, &bombyv1.ReconnectResponse{})
}
