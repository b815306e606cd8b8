/* matches.go
 * Contains the methods for interacting with the matches collection.
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"leaguehub/apperr"
	"leaguehub/model"
)

// ListMatches returns every match.
func (s *Store) ListMatches(ctx context.Context) ([]model.Match, error) {
	cursor, err := s.Collections.Matches.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching matches from db: %w", err)
	}
	var matches []model.Match
	if err = cursor.All(ctx, &matches); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of matches: %w", err)
	}
	return matches, nil
}

// GetMatch looks up a match by document id.
func (s *Store) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Match not found")
	}
	var match model.Match
	err = s.Collections.Matches.FindOne(ctx, bson.M{"_id": oid}).Decode(&match)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Match not found")
		}
		return nil, apperr.Internal("Match lookup failed", err)
	}
	return &match, nil
}

// CreateMatch inserts a new match. Status is always upcoming on creation.
func (s *Store) CreateMatch(ctx context.Context, match model.Match) error {
	match.Status = model.MatchUpcoming
	match.Details = nil
	_, err := s.Collections.Matches.InsertOne(ctx, match)
	if err != nil {
		return apperr.Internal("Match creation failed", err)
	}
	return nil
}

// CompleteMatch transitions a match to completed and records its details.
func (s *Store) CompleteMatch(ctx context.Context, id string, details model.MatchDetails) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Match not found")
	}
	update := bson.M{"$set": bson.M{"status": model.MatchCompleted, "details": details}}
	res, err := s.Collections.Matches.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return apperr.Internal("Match update failed", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Match not found")
	}
	return nil
}

// DeleteMatch removes a match document.
func (s *Store) DeleteMatch(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Match not found")
	}
	_, err = s.Collections.Matches.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Internal("Delete failed", err)
	}
	return nil
}
