package messages

import "encoding/json"

const (
	// MessageBufferSize represents the maximum size of an inbound stream message
	MessageBufferSize = 1024
)

// Message types
const (
	MessageTypeClientPing       = "ping"
	MessageTypeServerPong       = "pong"
	MessageTypeStateUpdate      = "state_update"
	MessageTypeTrapTriggered    = "trap_triggered"
	MessageTypeDecisionResolved = "decision_resolved"
	MessageTypeSessionRestarted = "session_restarted"
)

// Message is the envelope pushed over the state stream.
type Message struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
