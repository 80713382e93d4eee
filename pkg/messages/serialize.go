package messages

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewMessage wraps payload in an envelope with a fresh id.
func NewMessage(messageType string, payload interface{}) (*Message, error) {
	m := &Message{
		ID:   uuid.NewString(),
		Type: messageType,
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %v", messageType, err)
		}
		m.Payload = b
	}
	return m, nil
}

func SerializeMessage(m *Message) ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}
	return b, nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	m := &Message{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}
	if m.Type == "" {
		return nil, fmt.Errorf("message has no type")
	}
	return m, nil
}
