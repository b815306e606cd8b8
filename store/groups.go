/* groups.go
 * Contains the methods for interacting with the groups collection. Group
 * mutations always write the whole document back: teams and rosters are
 * embedded ordered arrays and there is no sub-document write path.
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"leaguehub/apperr"
	"leaguehub/model"
)

// ListGroups returns every group with its full teams/roster tree.
func (s *Store) ListGroups(ctx context.Context) ([]model.Group, error) {
	cursor, err := s.Collections.Groups.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching groups from db: %w", err)
	}
	var groups []model.Group
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of groups: %w", err)
	}
	return groups, nil
}

// GetGroup looks up a group by document id.
func (s *Store) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("Group not found")
	}
	var group model.Group
	err = s.Collections.Groups.FindOne(ctx, bson.M{"_id": oid}).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Group not found")
		}
		return nil, apperr.Internal("Group lookup failed", err)
	}
	return &group, nil
}

// CreateGroup inserts a new named group with no teams.
func (s *Store) CreateGroup(ctx context.Context, name string) error {
	group := model.Group{Name: name, Teams: []model.Team{}}
	_, err := s.Collections.Groups.InsertOne(ctx, group)
	if err != nil {
		return apperr.Internal("Group creation failed", err)
	}
	return nil
}

// ReplaceGroup persists the entire group document after an in-memory
// mutation of its teams or rosters. Replacing the full document is what
// guarantees nested array changes are recorded; a partial update would need
// the changed path spelled out.
func (s *Store) ReplaceGroup(ctx context.Context, group model.Group) error {
	res, err := s.Collections.Groups.ReplaceOne(ctx, bson.M{"_id": group.ID}, group)
	if err != nil {
		return apperr.Internal("Group update failed", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Group not found")
	}
	s.Log.Debug("group replaced", zap.String("group", group.Name), zap.Int("teams", len(group.Teams)))
	return nil
}

// DeleteGroup removes a group document.
func (s *Store) DeleteGroup(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("Group not found")
	}
	_, err = s.Collections.Groups.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Internal("Delete failed", err)
	}
	return nil
}
