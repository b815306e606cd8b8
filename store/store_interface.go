/* store_interface.go
 * Contains the Store interface for dependency injection and testing.
 */

package store

import (
	"context"

	"leaguehub/model"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	// Players
	ListPlayers(ctx context.Context) ([]model.Player, error)
	ListVerifiedPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	FindPlayerByName(ctx context.Context, name string) (*model.Player, error)
	CreatePlayer(ctx context.Context, player model.Player) (*model.Player, error)
	UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) error
	UpdatePlayerPassword(ctx context.Context, id string, hash string) error
	ApprovePlayer(ctx context.Context, id string, cardImage string) error
	UpdatePlayerStats(ctx context.Context, name string, update model.StatsUpdate) error
	DeletePlayer(ctx context.Context, id string) error

	// Matches
	ListMatches(ctx context.Context) ([]model.Match, error)
	GetMatch(ctx context.Context, id string) (*model.Match, error)
	CreateMatch(ctx context.Context, match model.Match) error
	CompleteMatch(ctx context.Context, id string, details model.MatchDetails) error
	DeleteMatch(ctx context.Context, id string) error

	// Groups
	ListGroups(ctx context.Context) ([]model.Group, error)
	GetGroup(ctx context.Context, id string) (*model.Group, error)
	CreateGroup(ctx context.Context, name string) error
	ReplaceGroup(ctx context.Context, group model.Group) error
	DeleteGroup(ctx context.Context, id string) error

	// Info singleton
	GetInfo(ctx context.Context) (*model.Info, error)
	ReplaceInfo(ctx context.Context, info model.Info) error
	SetLiveLink(ctx context.Context, link string) error

	Disconnect(ctx context.Context) error
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)
