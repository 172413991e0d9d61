package server

// Session 房间看到的客户端连接
type Session interface {
	ID() int32
	Send(data []byte) error
	Close()
	CloseWithoutNotify()
	SetPlayerID(id int32)
	RoomID() string
	SetRoomID(id string)
}
