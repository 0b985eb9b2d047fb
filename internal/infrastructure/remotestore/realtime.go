package remotestore

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/pkg/config"
)

// Subscribe opens (or reuses) the realtime connection and joins the change
// channel for the given table. One logical stream exists per table; repeated
// calls for the same table return the existing stream.
func (c *StoreClient) Subscribe(table string) (Subscription, error) {
	if !c.Configured() {
		return nil, ErrStoreUnavailable
	}

	c.rtMu.Lock()
	defer c.rtMu.Unlock()

	if c.realtime == nil {
		rt, err := newRealtimeConn(c.baseURL, c.anonKey, c.logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		c.realtime = rt
	}
	return c.realtime.subscribe(table)
}

// phoenixMessage is the wire frame of the realtime protocol.
type phoenixMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref"`
}

// changePayload is the postgres_changes payload carried by row-change frames.
type changePayload struct {
	Record    json.RawMessage `json:"record"`
	OldRecord json.RawMessage `json:"old_record"`
}

// eventBuffer bounds each table stream; a full buffer drops the event and
// logs, it never blocks the shared read loop.
const eventBuffer = 64

type tableSubscription struct {
	table  string
	topic  string
	events chan ChangeEvent
	rt     *realtimeConn
	once   sync.Once
}

func (s *tableSubscription) Events() <-chan ChangeEvent { return s.events }

func (s *tableSubscription) Unsubscribe() {
	s.once.Do(func() { s.rt.unsubscribe(s) })
}

// realtimeConn multiplexes every table's change channel over one websocket.
// A dropped socket is redialed with exponential backoff and all channels are
// rejoined; events arriving while disconnected are lost, which is logged as
// a staleness warning.
type realtimeConn struct {
	wsURL  string
	logger *logging.ChanneledLogger

	writeMu sync.Mutex
	conn    *websocket.Conn

	mu     sync.Mutex
	subs   map[string]*tableSubscription
	refSeq int
	closed bool

	done chan struct{}
}

func newRealtimeConn(baseURL, anonKey string, logger *logging.ChanneledLogger) (*realtimeConn, error) {
	wsURL := strings.Replace(baseURL, "http", "ws", 1) +
		"/realtime/v1/websocket?apikey=" + anonKey + "&vsn=1.0.0"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return nil, err
	}

	rt := &realtimeConn{
		wsURL:  wsURL,
		logger: logger,
		conn:   conn,
		subs:   make(map[string]*tableSubscription),
		done:   make(chan struct{}),
	}

	go rt.readLoop()
	go rt.heartbeatLoop()

	return rt, nil
}

func (rt *realtimeConn) subscribe(table string) (*tableSubscription, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil, ErrStoreUnavailable
	}

	topic := "realtime:public:" + table
	if existing, ok := rt.subs[topic]; ok {
		return existing, nil
	}

	sub := &tableSubscription{
		table:  table,
		topic:  topic,
		events: make(chan ChangeEvent, eventBuffer),
		rt:     rt,
	}

	if err := rt.send(topic, "phx_join"); err != nil {
		return nil, err
	}

	rt.subs[topic] = sub
	rt.logger.Realtime().Info("Joined change channel", "table", table)
	return sub, nil
}

func (rt *realtimeConn) unsubscribe(sub *tableSubscription) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if _, ok := rt.subs[sub.topic]; !ok {
		return
	}
	_ = rt.send(sub.topic, "phx_leave")
	delete(rt.subs, sub.topic)
	close(sub.events)
	rt.logger.Realtime().Info("Left change channel", "table", sub.table)
}

func (rt *realtimeConn) close() {
	rt.mu.Lock()
	if rt.closed {
		rt.mu.Unlock()
		return
	}
	rt.closed = true
	for topic, sub := range rt.subs {
		delete(rt.subs, topic)
		close(sub.events)
	}
	rt.mu.Unlock()

	close(rt.done)

	rt.writeMu.Lock()
	defer rt.writeMu.Unlock()
	if rt.conn != nil {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = rt.conn.WriteMessage(websocket.CloseMessage, msg)
		_ = rt.conn.Close()
	}
}

func (rt *realtimeConn) send(topic, event string) error {
	rt.refSeq++
	frame := phoenixMessage{
		Topic:   topic,
		Event:   event,
		Payload: json.RawMessage("{}"),
		Ref:     strconv.Itoa(rt.refSeq),
	}

	rt.writeMu.Lock()
	defer rt.writeMu.Unlock()
	if rt.conn == nil {
		return ErrStoreUnavailable
	}
	return rt.conn.WriteJSON(frame)
}

func (rt *realtimeConn) heartbeatLoop() {
	ticker := time.NewTicker(config.RealtimeHeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rt.done:
			return
		case <-ticker.C:
			rt.mu.Lock()
			err := rt.send("phoenix", "heartbeat")
			rt.mu.Unlock()
			if err != nil {
				rt.logger.Realtime().Warn("Heartbeat failed", "error", err.Error())
			}
		}
	}
}

func (rt *realtimeConn) readLoop() {
	for {
		rt.writeMu.Lock()
		conn := rt.conn
		rt.writeMu.Unlock()

		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-rt.done:
				return
			default:
			}

			rt.logger.Realtime().Warn("Change stream dropped; cached content is stale until resubscribed", "error", err.Error())
			if !rt.reconnect() {
				return
			}
			continue
		}

		rt.dispatch(raw)
	}
}

// reconnect redials with exponential backoff and rejoins every channel.
// Returns false only when the connection was closed deliberately.
func (rt *realtimeConn) reconnect() bool {
	policy := backoff.NewExponentialBackOff()
	policy.MaxInterval = config.RealtimeMaxReconnectWait
	policy.MaxElapsedTime = 0

	attempt := func() error {
		select {
		case <-rt.done:
			return backoff.Permanent(ErrStoreUnavailable)
		default:
		}

		conn, _, err := websocket.DefaultDialer.Dial(rt.wsURL, nil)
		if err != nil {
			rt.logger.Realtime().Warn("Reconnect attempt failed", "error", err.Error())
			return err
		}

		rt.writeMu.Lock()
		rt.conn = conn
		rt.writeMu.Unlock()

		rt.mu.Lock()
		defer rt.mu.Unlock()
		for topic := range rt.subs {
			if err := rt.send(topic, "phx_join"); err != nil {
				return err
			}
		}
		rt.logger.Realtime().Info("Change stream reconnected", "channels", len(rt.subs))
		return nil
	}

	return backoff.Retry(attempt, policy) == nil
}

func (rt *realtimeConn) dispatch(raw []byte) {
	var msg phoenixMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		rt.logger.Realtime().Warn("Undecodable realtime frame", "error", err.Error())
		return
	}

	kind := ChangeKind(msg.Event)
	switch kind {
	case ChangeInsert, ChangeUpdate, ChangeDelete:
	default:
		// phx_reply, heartbeat acks, presence frames
		return
	}

	var payload changePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		rt.logger.Realtime().Warn("Undecodable change payload", "topic", msg.Topic, "error", err.Error())
		return
	}

	rt.mu.Lock()
	sub, ok := rt.subs[msg.Topic]
	rt.mu.Unlock()
	if !ok {
		return
	}

	event := ChangeEvent{
		Table: sub.table,
		Kind:  kind,
		New:   payload.Record,
		Old:   payload.OldRecord,
	}

	select {
	case sub.events <- event:
	default:
		rt.logger.Realtime().Warn("Change event dropped, subscriber too slow", "table", sub.table, "kind", string(kind))
	}
}
