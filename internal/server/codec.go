package server

import (
	"fmt"

	bombyv1 "bomby/api/gen/bomby/v1"
	"bomby/pkg/protocol"
)

// DecodePacket 解析服务器收到的数据包。未知类型不算错误，返回 EventUnknown
func DecodePacket(data []byte) (*ServerEvent, error) {
	pkt, err := protocol.UnmarshalPacket(data)
	if err != nil {
		return nil, fmt.Errorf("解析包失败: %w", err)
	}

	ev := &ServerEvent{Type: pkt.Type}
	switch pkt.Type {
	case bombyv1.MessageType_MESSAGE_TYPE_JOIN_REQUEST:
		req, err := protocol.ParseJoinRequest(pkt)
		if err != nil {
			return nil, err
		}
		ev.Kind = EventJoin
		ev.Join = &JoinEvent{
			PlayerName: req.PlayerName,
			Character:  req.Character,
			RoomID:     req.RoomId,
		}

	case bombyv1.MessageType_MESSAGE_TYPE_CLIENT_INPUT:
		input, err := protocol.ParseClientInput(pkt)
		if err != nil {
			return nil, err
		}
		items := make([]InputData, 0, len(input.Inputs))
		for _, in := range input.Inputs {
			items = append(items, InputData{
				FrameID: in.FrameId,
				Up:      in.Up,
				Down:    in.Down,
				Left:    in.Left,
				Right:   in.Right,
				Bomb:    in.Bomb,
			})
		}
		ev.Kind = EventInput
		ev.Input = &InputEvent{Seq: input.Seq, Inputs: items}

	case bombyv1.MessageType_MESSAGE_TYPE_PING:
		ping, err := protocol.ParsePing(pkt)
		if err != nil {
			return nil, err
		}
		ev.Kind = EventPing
		ev.Ping = &PingEvent{ClientTime: ping.ClientTime}

	case bombyv1.MessageType_MESSAGE_TYPE_PONG:
		pong, err := protocol.ParsePong(pkt)
		if err != nil {
			return nil, err
		}
		ev.Kind = EventPong
		ev.Pong = &PongEvent{ClientTime: pong.ClientTime, ServerTime: pong.ServerTime, ServerFrame: pong.ServerFrame}

	case bombyv1.MessageType_MESSAGE_TYPE_RECONNECT_REQUEST:
		req, err := protocol.ParseReconnectRequest(pkt)
		if err != nil {
			return nil, err
		}
		ev.Kind = EventReconnect
		ev.Reconnect = &ReconnectEvent{SessionToken: req.SessionToken}

	default:
		ev.Kind = EventUnknown
	}
	return ev, nil
}

// encodePacket 编码构造好的消息包，可以直接接在 protocol.NewXxxPacket 之后
func encodePacket(pkt *bombyv1.Packet, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return protocol.MarshalPacket(pkt)
}
