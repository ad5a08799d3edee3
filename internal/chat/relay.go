package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Relay owns the session registry and fans chat messages out to every
// connected session. Delivery is best-effort and in-memory only: nothing is
// persisted and slow consumers are dropped rather than buffered forever.
type Relay struct {
	sessions map[string]*Session
	mu       sync.RWMutex

	upgrader websocket.Upgrader
	config   Config

	broadcastCh chan []byte
}

// Session is one connected browser tab.
type Session struct {
	ID    string
	Name  string
	Conn  *websocket.Conn
	Send  chan []byte
	Relay *Relay

	JoinedAt time.Time
	LastPing time.Time
}

// Config holds tunables for websocket sessions.
type Config struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

// DefaultConfig returns the default websocket configuration.
func DefaultConfig() Config {
	return Config{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  4096,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// Allow all origins in development - restrict in production
			return true
		},
	}
}

// NewRelay creates a relay with an empty session registry.
func NewRelay(config Config) *Relay {
	return &Relay{
		sessions: make(map[string]*Session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:      config,
		broadcastCh: make(chan []byte, 256),
	}
}

// Start processes broadcast messages until the context is cancelled. All
// sessions are closed on shutdown.
func (r *Relay) Start(ctx context.Context) {
	logrus.Info("chat relay started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("chat relay shutting down")
			r.closeAll()
			return
		case payload := <-r.broadcastCh:
			r.fanOut(payload)
		}
	}
}

// Subscribe upgrades an HTTP request to a websocket session and registers it.
func (r *Relay) Subscribe(w http.ResponseWriter, req *http.Request) error {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return fmt.Errorf("upgrade connection: %w", err)
	}

	session := &Session{
		ID:       uuid.New().String(),
		Conn:     conn,
		Send:     make(chan []byte, 64),
		Relay:    r,
		JoinedAt: time.Now(),
		LastPing: time.Now(),
	}

	r.register(session)

	go session.writePump()
	go session.readPump()

	logrus.WithField("session_id", session.ID).Info("chat session established")
	return nil
}

// Broadcast enqueues a message for fan-out to every registered session.
// Messages are dropped when the relay cannot keep up.
func (r *Relay) Broadcast(msg *Message) {
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now()
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal chat message")
		return
	}

	select {
	case r.broadcastCh <- payload:
	default:
		logrus.Warn("broadcast channel full, dropping chat message")
	}
}

// SessionCount reports the number of registered sessions.
func (r *Relay) SessionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Relay) register(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *Relay) unregister(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		delete(r.sessions, s.ID)
		close(s.Send)
		logrus.WithFields(logrus.Fields{
			"session_id": s.ID,
			"name":       s.Name,
		}).Info("chat session closed")
	}
}

func (r *Relay) fanOut(payload []byte) {
	r.mu.RLock()
	targets := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		targets = append(targets, s)
	}
	r.mu.RUnlock()

	for _, s := range targets {
		select {
		case s.Send <- payload:
		default:
			// Slow consumer, drop the session
			logrus.WithField("session_id", s.ID).Warn("session send buffer full, closing session")
			r.unregister(s)
			s.Conn.Close()
		}
	}
}

func (r *Relay) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		delete(r.sessions, id)
		close(s.Send)
		s.Conn.Close()
	}
}

// writePump forwards broadcast payloads to the socket and keeps it alive
// with periodic pings.
func (s *Session) writePump() {
	ticker := time.NewTicker(s.Relay.config.PingInterval)
	defer func() {
		ticker.Stop()
		s.Conn.Close()
		s.Relay.unregister(s)
	}()

	for {
		select {
		case payload, ok := <-s.Send:
			s.Conn.SetWriteDeadline(time.Now().Add(s.Relay.config.WriteTimeout))
			if !ok {
				s.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logrus.WithError(err).WithField("session_id", s.ID).Error("failed to write chat message")
				return
			}

		case <-ticker.C:
			s.Conn.SetWriteDeadline(time.Now().Add(s.Relay.config.WriteTimeout))
			if err := s.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
			s.LastPing = time.Now()
		}
	}
}

// readPump decodes inbound messages and turns them into broadcasts.
func (s *Session) readPump() {
	defer func() {
		s.Relay.unregister(s)
		s.Conn.Close()
	}()

	s.Conn.SetReadLimit(s.Relay.config.MaxMessageSize)
	s.Conn.SetReadDeadline(time.Now().Add(s.Relay.config.ReadTimeout))
	s.Conn.SetPongHandler(func(string) error {
		s.Conn.SetReadDeadline(time.Now().Add(s.Relay.config.ReadTimeout))
		s.LastPing = time.Now()
		return nil
	})

	for {
		_, payload, err := s.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).WithField("session_id", s.ID).Error("unexpected websocket close")
			}
			break
		}

		s.handleInbound(payload)
		s.Conn.SetReadDeadline(time.Now().Add(s.Relay.config.ReadTimeout))
	}
}

// handleInbound stamps the sender onto the message and rebroadcasts it. A
// login message records the display name on the session before the join
// announcement goes out.
func (s *Session) handleInbound(payload []byte) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		logrus.WithError(err).WithField("session_id", s.ID).Warn("discarding malformed chat message")
		return
	}

	switch msg.Type {
	case MessageTypeLogin:
		if msg.Name == "" {
			return
		}
		s.Name = msg.Name
		s.Relay.Broadcast(&Message{Type: MessageTypeLogin, Name: msg.Name})
	case MessageTypeChat:
		if s.Name != "" {
			msg.Name = s.Name
		}
		s.Relay.Broadcast(&Message{Type: MessageTypeChat, Name: msg.Name, Text: msg.Text})
	default:
		logrus.WithFields(logrus.Fields{
			"session_id": s.ID,
			"type":       string(msg.Type),
		}).Debug("ignoring unknown chat message type")
	}
}
