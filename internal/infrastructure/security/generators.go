// Package security contains identity and credential helpers.
package security

import "github.com/oklog/ulid/v2"

// GenerateULID returns a new lexicographically sortable row id. Ids are
// assigned client-side so optimistic cache patches carry real identity.
func GenerateULID() string {
	return ulid.Make().String()
}
