/* test_helpers.go
 * Contains test helper functions for store package tests.
 */

package store

import (
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

// newTestStore builds a Store backed by the mtest mock client. All four
// collection handles point at the mock collection; queued responses are
// consumed in call order so that is enough for single-collection tests.
func newTestStore(mt *mtest.T) *Store {
	s := &Store{
		Client:   mt.Client,
		Database: mt.DB,
		Log:      zap.NewNop(),
	}
	s.Collections.Players = mt.Coll
	s.Collections.Matches = mt.Coll
	s.Collections.Groups = mt.Coll
	s.Collections.Info = mt.Coll
	return s
}
