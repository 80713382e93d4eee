package network

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/log"
	"github.com/cbodonnell/moralmaze/pkg/messages"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// StateStream pushes session messages to websocket subscribers.
type StateStream struct {
	clients  *ClientManager
	upgrader websocket.Upgrader
	logger   *log.Logger
}

type NewStateStreamOptions struct {
	// AllowedOrigin is matched against the Origin header. Empty or "*" allows any origin.
	AllowedOrigin string
}

// NewStateStream creates a new StateStream.
func NewStateStream(opts NewStateStreamOptions) *StateStream {
	s := &StateStream{
		clients: NewClientManager(),
		logger:  log.Default().Named("stream"),
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if opts.AllowedOrigin == "" || opts.AllowedOrigin == "*" {
				return true
			}
			origin := r.Header.Get("Origin")
			return origin == "" || origin == opts.AllowedOrigin
		},
	}
	return s
}

// Subscribers returns the number of connected subscribers.
func (s *StateStream) Subscribers() int {
	return s.clients.Count()
}

// Broadcast sends msg to every subscriber.
func (s *StateStream) Broadcast(msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}
	n := s.clients.Broadcast(b)
	s.logger.Trace("Broadcast %s to %d subscribers", msg.Type, n)
	return nil
}

// ServeHTTP upgrades the request and streams messages until the peer leaves.
func (s *StateStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade to WebSocket: %v", err)
		return
	}
	client, err := s.clients.ConnectClient(conn)
	if err != nil {
		s.logger.Error("Failed to connect client: %v", err)
		conn.Close()
		return
	}
	s.logger.Debug("Client %d subscribed from %s", client.ID, conn.RemoteAddr().String())

	go s.writePump(client)
	s.readPump(client)
}

// readPump answers pings and detects disconnects.
func (s *StateStream) readPump(client *Client) {
	defer func() {
		s.clients.DisconnectClient(client.ID)
		s.logger.Debug("Client %d unsubscribed", client.ID)
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msg, err := ReadMessageFromWS(client.conn)
		if err != nil {
			if isDecodeError(err) {
				s.logger.Warn("Client %d sent a malformed message: %v", client.ID, err)
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Error("Error reading WebSocket message from client %d: %v", client.ID, err)
			}
			return
		}

		switch msg.Type {
		case messages.MessageTypeClientPing:
			pong, err := messages.NewMessage(messages.MessageTypeServerPong, nil)
			if err != nil {
				s.logger.Error("Failed to build pong: %v", err)
				continue
			}
			b, err := messages.SerializeMessage(pong)
			if err != nil {
				s.logger.Error("Failed to serialize pong: %v", err)
				continue
			}
			s.clients.Send(client.ID, b)
		default:
			s.logger.Warn("Ignoring %s message from client %d", msg.Type, client.ID)
		}
	}
}

// writePump drains the client's send channel onto the connection.
func (s *StateStream) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case b, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				s.logger.Debug("Failed to write to client %d: %v", client.ID, err)
				return
			}
		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// decodeError marks a frame that arrived intact but did not parse.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("failed to deserialize message: %v", e.err)
}

func isDecodeError(err error) bool {
	_, ok := err.(*decodeError)
	return ok
}

// WriteMessageToWS writes a Message to a WebSocket connection
func WriteMessageToWS(conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection
func ReadMessageFromWS(conn *websocket.Conn) (*messages.Message, error) {
	_, message, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(message)
	if err != nil {
		return nil, &decodeError{err: err}
	}

	return msg, nil
}
