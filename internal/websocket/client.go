package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
	sendBuffer     = 64

	// DefaultPingInterval is used when ClientOptions leaves it unset
	DefaultPingInterval = 54 * time.Second
)

// Inbound message types a dashboard may send
const (
	MessageTypeResync = "resync"
)

// SnapshotFunc returns the current session state for a resync
type SnapshotFunc func() interface{}

// ClientOptions configures a dashboard connection
type ClientOptions struct {
	// PingInterval is how often the server pings. A peer that stays silent
	// for longer than pongWait(PingInterval) is dropped.
	PingInterval time.Duration

	// Snapshot, when set, is sent on connect and on every resync request
	Snapshot SnapshotFunc
}

func (o ClientOptions) pingInterval() time.Duration {
	if o.PingInterval <= 0 {
		return DefaultPingInterval
	}
	return o.PingInterval
}

// pongWait leaves a tenth of the interval of slack after each ping
func pongWait(pingInterval time.Duration) time.Duration {
	return pingInterval * 10 / 9
}

// inboundMessage is what dashboards send to the server
type inboundMessage struct {
	Type string `json:"type"`
}

// Client is one dashboard connection. Dashboards mostly listen; the only
// request they may send is a resync, answered with a session.snapshot event.
type Client struct {
	id        string
	conn      *websocket.Conn
	hub       *Hub
	opts      ClientOptions
	send      chan []byte
	closed    bool
	mu        sync.RWMutex
	closeOnce sync.Once
}

// NewClient creates a dashboard client for an upgraded connection
func NewClient(conn *websocket.Conn, hub *Hub, opts ClientOptions) *Client {
	return &Client{
		id:   uuid.New().String(),
		conn: conn,
		hub:  hub,
		opts: opts,
		send: make(chan []byte, sendBuffer),
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() string {
	return c.id
}

// Send queues a message. A full buffer means the dashboard is too slow and
// the message is refused.
func (c *Client) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}

	select {
	case c.send <- data:
		return nil
	default:
		return ErrClientClosed
	}
}

// Close closes the connection. Safe to call more than once.
func (c *Client) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()

		if c.conn != nil {
			closeErr = c.conn.Close()
		}
	})
	return closeErr
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// SendSnapshot queues a session.snapshot event if a snapshot source is set
func (c *Client) SendSnapshot() {
	if c.opts.Snapshot == nil {
		return
	}
	data, err := SessionSnapshot(c.opts.Snapshot()).ToJSON()
	if err != nil {
		log.Error().Err(err).Str("client_id", c.id).Msg("Failed to serialize snapshot")
		return
	}
	if err := c.Send(data); err != nil {
		log.Debug().Err(err).Str("client_id", c.id).Msg("Snapshot dropped")
	}
}

// handleMessage reacts to one inbound frame
func (c *Client) handleMessage(data []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Debug().Err(err).Str("client_id", c.id).Msg("Ignoring malformed WebSocket message")
		return
	}

	switch msg.Type {
	case MessageTypeResync:
		c.SendSnapshot()
	default:
		log.Debug().Str("client_id", c.id).Str("type", msg.Type).Msg("Ignoring unknown WebSocket message")
	}
}

// ReadPump reads resync requests until the peer goes away.
// Run it in its own goroutine.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	wait := pongWait(c.opts.pingInterval())
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(wait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(wait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client_id", c.id).Msg("WebSocket unexpected close")
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(wait))
		c.handleMessage(data)
	}
}

// WritePump writes queued events and pings at the configured interval.
// Run it in its own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.opts.pingInterval())
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Warn().Err(err).Str("client_id", c.id).Msg("WebSocket write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
