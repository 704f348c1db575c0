package hub

import (
	"sync"

	"github.com/google/uuid"
)

// Conn is the transport edge of one client connection. *websocket.Conn from
// gorilla/websocket satisfies it.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	Close() error
}

// Peer is one registered client. Writes are serialized behind a mutex so a
// broadcast and the initial snapshot can never interleave frames on the same
// socket.
type Peer struct {
	id   string
	conn Conn

	mu sync.Mutex
}

// NewPeer wraps a connection with a stable id for registry membership and logs.
func NewPeer(conn Conn) *Peer {
	return &Peer{id: uuid.NewString(), conn: conn}
}

// ID returns the peer's connection id.
func (p *Peer) ID() string {
	return p.id
}

// Send writes one JSON message to the peer.
func (p *Peer) Send(v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(v)
}

// Close closes the underlying connection.
func (p *Peer) Close() error {
	return p.conn.Close()
}
