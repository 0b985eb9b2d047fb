package services

import (
	"context"
	"io"

	json "github.com/goccy/go-json"

	"github.com/sauntrix/sauntrix-go/internal/infrastructure/messaging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/observability/logging"
	"github.com/sauntrix/sauntrix-go/internal/infrastructure/remotestore"
)

func newTestLogger() *logging.ChanneledLogger {
	cfg := logging.DefaultLoggerConfig()
	cfg.Output = io.Discard
	return logging.NewChanneledLogger(cfg)
}

func newTestNotifier() (*messaging.Notifier, *messaging.SSEBroadcaster) {
	broadcaster := messaging.NewSSEBroadcaster(newTestLogger())
	return messaging.NewNotifier(broadcaster), broadcaster
}

// fakeStore is an in-test remote store. Reads serve canned JSON per table,
// writes echo the given row back through dest the way return=representation
// does, and every call is recorded.
type fakeStore struct {
	configured bool
	probeErr   error

	selectRows map[string]string
	selectErr  map[string]error
	writeErr   map[string]error

	inserts []fakeWrite
	updates []fakeWrite
	upserts []fakeWrite
	deletes []remotestore.Filter

	subs map[string]*fakeSubscription
}

type fakeWrite struct {
	table       string
	payload     []byte
	filter      remotestore.Filter
	conflictKey string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		configured: true,
		selectRows: make(map[string]string),
		selectErr:  make(map[string]error),
		writeErr:   make(map[string]error),
		subs:       make(map[string]*fakeSubscription),
	}
}

func (f *fakeStore) Configured() bool              { return f.configured }
func (f *fakeStore) Probe(_ context.Context) error { return f.probeErr }

func (f *fakeStore) Select(_ context.Context, table string, _ remotestore.SelectOptions, dest any) error {
	if err := f.selectErr[table]; err != nil {
		return err
	}
	raw, ok := f.selectRows[table]
	if !ok {
		raw = "[]"
	}
	return json.Unmarshal([]byte(raw), dest)
}

func echoRow(row any, dest any) error {
	if dest == nil {
		return nil
	}
	encoded, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, dest)
}

func (f *fakeStore) Insert(_ context.Context, table string, row any, dest any) error {
	if err := f.writeErr[table]; err != nil {
		return err
	}
	encoded, _ := json.Marshal(row)
	f.inserts = append(f.inserts, fakeWrite{table: table, payload: encoded})
	return echoRow(row, dest)
}

func (f *fakeStore) Update(_ context.Context, table string, filter remotestore.Filter, patch any, dest any) error {
	if err := f.writeErr[table]; err != nil {
		return err
	}
	encoded, _ := json.Marshal(patch)
	f.updates = append(f.updates, fakeWrite{table: table, payload: encoded, filter: filter})
	return nil
}

func (f *fakeStore) Upsert(_ context.Context, table string, row any, conflictKey string, dest any) error {
	if err := f.writeErr[table]; err != nil {
		return err
	}
	encoded, _ := json.Marshal(row)
	f.upserts = append(f.upserts, fakeWrite{table: table, payload: encoded, conflictKey: conflictKey})
	return echoRow(row, dest)
}

func (f *fakeStore) Delete(_ context.Context, table string, filter remotestore.Filter) error {
	if err := f.writeErr[table]; err != nil {
		return err
	}
	f.deletes = append(f.deletes, filter)
	return nil
}

func (f *fakeStore) Subscribe(table string) (remotestore.Subscription, error) {
	sub := &fakeSubscription{events: make(chan remotestore.ChangeEvent, 16)}
	f.subs[table] = sub
	return sub, nil
}

func (f *fakeStore) Close() {}

type fakeSubscription struct {
	events chan remotestore.ChangeEvent
	closed bool
}

func (s *fakeSubscription) Events() <-chan remotestore.ChangeEvent { return s.events }

func (s *fakeSubscription) Unsubscribe() {
	if !s.closed {
		s.closed = true
		close(s.events)
	}
}
