/* players.go
 * Contains the methods for interacting with the players collection.
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"leaguehub/apperr"
	"leaguehub/model"
)

// ListPlayers returns every registered player.
func (s *Store) ListPlayers(ctx context.Context) ([]model.Player, error) {
	cursor, err := s.Collections.Players.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching players from db: %w", err)
	}
	var players []model.Player
	if err = cursor.All(ctx, &players); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of players: %w", err)
	}
	return players, nil
}

// ListVerifiedPlayers returns the players shown on the market page.
func (s *Store) ListVerifiedPlayers(ctx context.Context) ([]model.Player, error) {
	cursor, err := s.Collections.Players.Find(ctx, bson.M{"verified": true})
	if err != nil {
		return nil, fmt.Errorf("error fetching verified players from db: %w", err)
	}
	var players []model.Player
	if err = cursor.All(ctx, &players); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of players: %w", err)
	}
	return players, nil
}

// GetPlayer looks up a player by document id.
func (s *Store) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Player not found")
	}
	var player model.Player
	err = s.Collections.Players.FindOne(ctx, bson.M{"_id": oid}).Decode(&player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Player not found")
		}
		return nil, apperr.Internal("Player lookup failed", err)
	}
	return &player, nil
}

// FindPlayerByName looks up a player by name, case-insensitively but
// otherwise exact. Returns a NotFound error when no player matches.
func (s *Store) FindPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	opts := options.FindOne().SetCollation(&caseInsensitive)

	var player model.Player
	err := s.Collections.Players.FindOne(ctx, bson.M{"name": name}, opts).Decode(&player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Player not found")
		}
		return nil, apperr.Internal("Player lookup failed", err)
	}
	return &player, nil
}

// CreatePlayer registers a new player. A duplicate name, differing at most
// in case, is rejected with a Conflict. The pre-check provides the message;
// the unique index catches the race where two registrations pass the check
// at the same time.
func (s *Store) CreatePlayer(ctx context.Context, player model.Player) (*model.Player, error) {
	_, err := s.FindPlayerByName(ctx, player.Name)
	if err == nil {
		return nil, apperr.Conflict("Username already taken!")
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, err
	}

	res, err := s.Collections.Players.InsertOne(ctx, player)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("Username already taken!")
		}
		return nil, apperr.Internal("Registration failed", err)
	}
	player.ID = res.InsertedID.(primitive.ObjectID)
	s.Log.Info("player registered", zap.String("name", player.Name))
	return &player, nil
}

// UpdateProfile applies the self-service profile fields.
func (s *Store) UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Player not found")
	}
	_, err = s.Collections.Players.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return apperr.Internal("Update failed", err)
	}
	return nil
}

// UpdatePlayerPassword replaces the stored credential, used when re-hashing
// a legacy plaintext password after a successful login.
func (s *Store) UpdatePlayerPassword(ctx context.Context, id string, hash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Player not found")
	}
	_, err = s.Collections.Players.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return apperr.Internal("Update failed", err)
	}
	return nil
}

// ApprovePlayer marks a player verified and sets their market card image.
func (s *Store) ApprovePlayer(ctx context.Context, id string, cardImage string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Player not found")
	}
	update := bson.M{"$set": bson.M{"verified": true, "cardImage": cardImage}}
	_, err = s.Collections.Players.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return apperr.Internal("Approval failed", err)
	}
	return nil
}

// UpdatePlayerStats applies the admin market card edits, addressed by player
// name as the admin form submits it.
func (s *Store) UpdatePlayerStats(ctx context.Context, name string, update model.StatsUpdate) error {
	_, err := s.Collections.Players.UpdateOne(ctx, bson.M{"name": name}, bson.M{"$set": update})
	if err != nil {
		return apperr.Internal("Stat update failed", err)
	}
	return nil
}

// DeletePlayer removes a player document.
func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Player not found")
	}
	_, err = s.Collections.Players.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Internal("Delete failed", err)
	}
	return nil
}
