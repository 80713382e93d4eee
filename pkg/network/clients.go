package network

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// ClientSendBufferSize is the number of outbound messages buffered per subscriber
	ClientSendBufferSize = 256
)

// Client represents a stream subscriber
type Client struct {
	ID   uint32
	conn *websocket.Conn
	send chan []byte
}

// ClientManager manages connected stream subscribers
type ClientManager struct {
	clients     map[uint32]*Client
	clientsLock sync.RWMutex
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[uint32]*Client),
	}
}

// Count returns the number of connected subscribers.
func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// ConnectClient adds a new subscriber to the manager and returns it
func (cm *ClientManager) ConnectClient(conn *websocket.Conn) (*Client, error) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	clientID, err := cm.generateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	client := &Client{
		ID:   clientID,
		conn: conn,
		send: make(chan []byte, ClientSendBufferSize),
	}
	cm.clients[clientID] = client
	return client, nil
}

// DisconnectClient removes a subscriber from the manager and closes its send channel
func (cm *ClientManager) DisconnectClient(clientID uint32) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	client, ok := cm.clients[clientID]
	if !ok {
		return
	}
	close(client.send)
	delete(cm.clients, clientID)
}

// Broadcast queues b on every subscriber. Subscribers whose buffer is full
// are disconnected. It returns the number of subscribers reached.
func (cm *ClientManager) Broadcast(b []byte) int {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	sent := 0
	for id, client := range cm.clients {
		select {
		case client.send <- b:
			sent++
		default:
			close(client.send)
			delete(cm.clients, id)
		}
	}
	return sent
}

// Send queues b on a single subscriber.
func (cm *ClientManager) Send(clientID uint32, b []byte) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()

	client, ok := cm.clients[clientID]
	if !ok {
		return false
	}
	select {
	case client.send <- b:
		return true
	default:
		return false
	}
}

// generateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := rand.Uint32()
		if id == 0 {
			continue
		}
		if _, ok := cm.clients[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
