// Package remotestore wraps the hosted backend: PostgREST-style reads and
// writes plus per-table change-event subscriptions over a realtime websocket.
package remotestore

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// ErrStoreUnavailable is returned by every operation when the remote store is
// unconfigured or unreachable. Callers degrade to defaults rather than fail.
var ErrStoreUnavailable = errors.New("remote store unavailable")

// Table names consumed by the content layer.
const (
	TableDiscography    = "discography"
	TableVideos         = "videos"
	TableCommunityPosts = "community_posts"
	TableFanart         = "fanart"
	TableSiteAssets     = "site_assets"
	TableSiteSettings   = "site_settings"
	TablePageContent    = "page_content"
)

// ChangeKind is the kind of row change carried by a realtime event.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeUpdate ChangeKind = "UPDATE"
	ChangeDelete ChangeKind = "DELETE"
)

// ChangeEvent is one row change delivered on a table's change stream. New is
// present for INSERT/UPDATE, Old for UPDATE/DELETE.
type ChangeEvent struct {
	Table string
	Kind  ChangeKind
	New   json.RawMessage
	Old   json.RawMessage
}

// Subscription is a live change stream for a single table. Events are
// delivered in the order the store emits them. Unsubscribe is idempotent.
type Subscription interface {
	Events() <-chan ChangeEvent
	Unsubscribe()
}

// Filter is an equality filter on a single column.
type Filter struct {
	Column string
	Value  string
}

// SelectOptions narrows and orders a Select.
type SelectOptions struct {
	OrderBy    string
	Descending bool
	Limit      int
}

// Client is the remote store contract consumed by the loader, the merge
// engine, and the mutation services. dest arguments, where non-nil, receive
// the affected row(s) as returned by the store.
type Client interface {
	// Configured reports whether store credentials are present at all.
	Configured() bool
	// Probe is the lightweight connectivity check used to short-circuit
	// bulk loading when the backend is unreachable.
	Probe(ctx context.Context) error

	Select(ctx context.Context, table string, opts SelectOptions, dest any) error
	Insert(ctx context.Context, table string, row any, dest any) error
	Update(ctx context.Context, table string, filter Filter, patch any, dest any) error
	Upsert(ctx context.Context, table string, row any, conflictKey string, dest any) error
	Delete(ctx context.Context, table string, filter Filter) error

	Subscribe(table string) (Subscription, error)
	Close()
}

// StoreError carries the HTTP status and response body of a failed store call.
type StoreError struct {
	Status int
	Body   string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("remote store error: status %d: %s", e.Status, e.Body)
}
