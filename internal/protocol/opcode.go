package protocol

import "strconv"

// Opcode is the small integer discriminant selecting which payload kind a
// body must be validated against.
type Opcode int

const (
	// dispatches a gateway event
	OpcodeEvent Opcode = 0
	// heartbeat from the client
	OpcodePing Opcode = 1
	// heartbeat acknowledgement from the server
	OpcodePong Opcode = 2
	// client handshake
	OpcodeIdentify Opcode = 3
	// handshake acknowledgement carrying the logins
	OpcodeReady Opcode = 4
)

func (op Opcode) known() bool {
	return op >= OpcodeEvent && op <= OpcodeReady
}

func (op Opcode) String() string {
	switch op {
	case OpcodeEvent:
		return "EVENT"
	case OpcodePing:
		return "PING"
	case OpcodePong:
		return "PONG"
	case OpcodeIdentify:
		return "IDENTIFY"
	case OpcodeReady:
		return "READY"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(op)) + ")"
	}
}

// ChannelType classifies a channel.
type ChannelType int

const (
	ChannelText     ChannelType = 0
	ChannelVoice    ChannelType = 1
	ChannelCategory ChannelType = 2
	ChannelDirect   ChannelType = 3
)

func (t ChannelType) known() bool {
	return t >= ChannelText && t <= ChannelDirect
}

func (t ChannelType) String() string {
	switch t {
	case ChannelText:
		return "TEXT"
	case ChannelVoice:
		return "VOICE"
	case ChannelCategory:
		return "CATEGORY"
	case ChannelDirect:
		return "DIRECT"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
	}
}

// LoginStatus is the connection state of a login.
type LoginStatus int

const (
	StatusOffline    LoginStatus = 0
	StatusOnline     LoginStatus = 1
	StatusConnect    LoginStatus = 2
	StatusDisconnect LoginStatus = 3
	StatusReconnect  LoginStatus = 4
)

func (s LoginStatus) known() bool {
	return s >= StatusOffline && s <= StatusReconnect
}

func (s LoginStatus) String() string {
	switch s {
	case StatusOffline:
		return "OFFLINE"
	case StatusOnline:
		return "ONLINE"
	case StatusConnect:
		return "CONNECT"
	case StatusDisconnect:
		return "DISCONNECT"
	case StatusReconnect:
		return "RECONNECT"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
	}
}
