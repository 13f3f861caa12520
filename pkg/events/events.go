// Package events implements the WebSocket push side of spec.md §6.3's
// "real-time notification via pub/sub channel": a per-process
// ConnectionManager that fans bus events out to subscribed WebSocket
// clients. Grounded on the teacher's pkg/events.ConnectionManager
// (connection registry, channel subscription set, Broadcast-under-
// snapshot-then-send), adapted from Postgres LISTEN/NOTIFY fan-out to the
// pkg/bus pub/sub substrate Sibyl's other components already publish
// through (approval_response:<id>, inter_agent_message, plus a
// orchestrator-status channel this package adds for UI consumption).
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/pkg/bus"
)

// ClientMessage is a message a WebSocket client sends to (un)subscribe.
type ClientMessage struct {
	Action  string `json:"action"` // "subscribe" | "unsubscribe"
	Channel string `json:"channel"`
}

// Connection is a single WebSocket client. subscriptions is only ever
// touched from the goroutine running HandleConnection, matching the
// teacher's lock-free-by-construction comment on the same field.
type Connection struct {
	ID            string
	conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// Manager owns every live WebSocket connection in this process and the
// channel subscription sets routing bus events to them. One Manager per
// API process, matching §9's "cross-process orchestration" design note —
// WebSocket push is a pure function of this process's own connections.
type Manager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewManager constructs a Manager. writeTimeout bounds a single WebSocket
// send; a slow/dead client is dropped rather than stalling Broadcast.
func NewManager(writeTimeout time.Duration) *Manager {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Manager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		writeTimeout: writeTimeout,
		logger:       slog.Default().With("component", "events-manager"),
	}
}

// HandleConnection owns the lifecycle of one WebSocket connection: register,
// read client (un)subscribe messages until the socket closes, then
// unregister. Blocks until the connection closes.
func (m *Manager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            connID,
		conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.sendJSON(c, map[string]string{"type": "connection.established", "connection_id": connID})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		switch msg.Action {
		case "subscribe":
			m.subscribe(c, msg.Channel)
		case "unsubscribe":
			m.unsubscribe(c, msg.Channel)
		}
	}
}

func (m *Manager) register(c *Connection) {
	m.mu.Lock()
	m.connections[c.ID] = c
	m.mu.Unlock()
}

func (m *Manager) unregister(c *Connection) {
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	m.channelMu.Lock()
	for ch := range c.subscriptions {
		if set, ok := m.channels[ch]; ok {
			delete(set, c.ID)
			if len(set) == 0 {
				delete(m.channels, ch)
			}
		}
	}
	m.channelMu.Unlock()
	c.cancel()
}

func (m *Manager) subscribe(c *Connection, channel string) {
	if channel == "" {
		return
	}
	m.channelMu.Lock()
	set, ok := m.channels[channel]
	if !ok {
		set = make(map[string]bool)
		m.channels[channel] = set
	}
	set[c.ID] = true
	m.channelMu.Unlock()
	c.subscriptions[channel] = true
}

func (m *Manager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if set, ok := m.channels[channel]; ok {
		delete(set, c.ID)
		if len(set) == 0 {
			delete(m.channels, channel)
		}
	}
	m.channelMu.Unlock()
	delete(c.subscriptions, channel)
}

// Broadcast sends payload to every connection currently subscribed to
// channel. Snapshots connection pointers under lock, then sends outside it
// so a slow client can't stall subscribe/unsubscribe for everyone else.
func (m *Manager) Broadcast(channel string, payload []byte) {
	m.channelMu.RLock()
	set, ok := m.channels[channel]
	if !ok {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range conns {
		if err := m.send(c, payload); err != nil {
			m.logger.Warn("websocket send failed", "connection_id", c.ID, "channel", channel, "error", err)
		}
	}
}

func (m *Manager) sendJSON(c *Connection, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = m.send(c, payload)
}

func (m *Manager) send(c *Connection, payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, payload)
}

// ActiveConnections returns the number of currently live connections.
func (m *Manager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// Feeder subscribes to the bus channels Sibyl already publishes through
// (approval_response:<id> per-approval channels are joined dynamically by
// callers that know the id; this Feeder owns the two always-on fan-out
// channels) and re-broadcasts every payload to WebSocket subscribers of the
// same channel name. This is the seam that turns §4.5/§4.6's bus publishes
// into UI pushes without either component importing pkg/events directly.
type Feeder struct {
	bus     bus.Bus
	manager *Manager
	logger  *slog.Logger
}

// NewFeeder constructs a Feeder over the shared bus and a Manager to feed.
func NewFeeder(b bus.Bus, manager *Manager) *Feeder {
	return &Feeder{bus: b, manager: manager, logger: slog.Default().With("component", "events-feeder")}
}

// Run subscribes to channel and re-broadcasts every message received until
// ctx is cancelled. Intended to be run once per always-on channel
// (inter_agent_message) in its own goroutine; callers needing a dynamic
// per-approval channel call RunOnce instead.
func (f *Feeder) Run(ctx context.Context, channel string) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := f.RunOnce(ctx, channel); err != nil {
			f.logger.Warn("bus subscription failed, retrying", "channel", channel, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
	}
}

// RunOnce subscribes to channel and relays messages until the subscription
// ends (ctx cancellation or transport error), then returns.
func (f *Feeder) RunOnce(ctx context.Context, channel string) error {
	sub, err := f.bus.Subscribe(ctx, channel)
	if err != nil {
		return err
	}
	defer sub.Close()

	for {
		payload, ok := sub.Receive(ctx)
		if !ok {
			return nil
		}
		f.manager.Broadcast(channel, []byte(payload))
	}
}
