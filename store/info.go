/* info.go
 * Contains the methods for interacting with the info singleton. The
 * collection holds exactly one logical document, created with zero values
 * the first time anything reads it.
 */

package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"leaguehub/apperr"
	"leaguehub/model"
)

// GetInfo returns the singleton, creating it on first read.
func (s *Store) GetInfo(ctx context.Context) (*model.Info, error) {
	var info model.Info
	err := s.Collections.Info.FindOne(ctx, bson.D{}).Decode(&info)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return nil, apperr.Internal("Settings lookup failed", err)
	}

	if notFound {
		info = model.NewInfo()
		res, err := s.Collections.Info.InsertOne(ctx, info)
		if err != nil {
			return nil, apperr.Internal("Settings creation failed", err)
		}
		info.ID = res.InsertedID.(primitive.ObjectID)
		s.Log.Info("info singleton created")
	}

	return &info, nil
}

// ReplaceInfo persists the entire singleton after an in-memory mutation of
// one of its sub-collections.
func (s *Store) ReplaceInfo(ctx context.Context, info model.Info) error {
	res, err := s.Collections.Info.ReplaceOne(ctx, bson.M{"_id": info.ID}, info)
	if err != nil {
		return apperr.Internal("Settings update failed", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Settings not found")
	}
	return nil
}

// SetLiveLink updates the live stream link.
func (s *Store) SetLiveLink(ctx context.Context, link string) error {
	info, err := s.GetInfo(ctx)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"liveLink": link}}
	_, err = s.Collections.Info.UpdateOne(ctx, bson.M{"_id": info.ID}, update)
	if err != nil {
		return apperr.Internal("Settings update failed", err)
	}
	return nil
}
