/* store.go
 * Contains the Store struct and NewStore function. The methods for this
 * package are split across players.go, matches.go, groups.go and info.go,
 * one file per collection.
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// caseInsensitive is the collation used for player name lookups and the
// unique name index. Strength 2 compares base characters and case-folds.
var caseInsensitive = options.Collation{Locale: "en", Strength: 2}

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Log         *zap.Logger
	Collections struct {
		Players *mongo.Collection
		Matches *mongo.Collection
		Groups  *mongo.Collection
		Info    *mongo.Collection
	}
}

// NewStore connects to MongoDB and initialises the collection handles. It
// also ensures the unique case-insensitive index on player names; the
// duplicate pre-check in CreatePlayer gives the friendly error message, the
// index closes the race between two concurrent registrations.
func NewStore(ctx context.Context, dbName string, mongoURI string, log *zap.Logger) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
		Log:      log,
	}
	s.Collections.Players = db.Collection("players")
	s.Collections.Matches = db.Collection("matches")
	s.Collections.Groups = db.Collection("groups")
	s.Collections.Info = db.Collection("info")

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.Collections.Players.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&caseInsensitive),
	})
	return err
}

// Disconnect closes the underlying client connection.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
