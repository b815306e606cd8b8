/* fake_store_test.go
 * In-memory store.Interface implementation for handler tests. Reads hand
 * out deep copies so a handler mutation only becomes visible after the
 * corresponding Replace call, mirroring the real write-back contract.
 */

package web

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"leaguehub/apperr"
	"leaguehub/model"
)

type fakeStore struct {
	players []model.Player
	matches []model.Match
	groups  []model.Group
	info    model.Info

	// Mutation counters for asserting that gated routes stayed untouched.
	writes int

	// Error injection
	createPlayerErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{info: model.NewInfo()}
}

func copyGroup(g model.Group) model.Group {
	out := g
	out.Teams = make([]model.Team, len(g.Teams))
	for i, t := range g.Teams {
		out.Teams[i] = t
		out.Teams[i].Roster = append([]model.RosterEntry(nil), t.Roster...)
	}
	return out
}

func copyInfo(info model.Info) model.Info {
	out := info
	out.Leaderboards.Scorers = append([]model.LeaderboardEntry(nil), info.Leaderboards.Scorers...)
	out.Leaderboards.Saves = append([]model.LeaderboardEntry(nil), info.Leaderboards.Saves...)
	out.Leaderboards.Assists = append([]model.LeaderboardEntry(nil), info.Leaderboards.Assists...)
	out.Records = append([]model.Record(nil), info.Records...)
	out.Stories = append([]model.Story(nil), info.Stories...)
	return out
}

// --- Players ---

func (f *fakeStore) ListPlayers(context.Context) ([]model.Player, error) {
	return append([]model.Player(nil), f.players...), nil
}

func (f *fakeStore) ListVerifiedPlayers(context.Context) ([]model.Player, error) {
	var out []model.Player
	for _, p := range f.players {
		if p.Verified {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) GetPlayer(_ context.Context, id string) (*model.Player, error) {
	for _, p := range f.players {
		if p.ID.Hex() == id {
			out := p
			return &out, nil
		}
	}
	return nil, apperr.NotFound("Player not found")
}

func (f *fakeStore) FindPlayerByName(_ context.Context, name string) (*model.Player, error) {
	for _, p := range f.players {
		if strings.EqualFold(p.Name, name) {
			out := p
			return &out, nil
		}
	}
	return nil, apperr.NotFound("Player not found")
}

func (f *fakeStore) CreatePlayer(_ context.Context, player model.Player) (*model.Player, error) {
	if f.createPlayerErr != nil {
		return nil, f.createPlayerErr
	}
	for _, p := range f.players {
		if strings.EqualFold(p.Name, player.Name) {
			return nil, apperr.Conflict("Username already taken!")
		}
	}
	player.ID = primitive.NewObjectID()
	f.players = append(f.players, player)
	f.writes++
	return &player, nil
}

func (f *fakeStore) UpdateProfile(_ context.Context, id string, update model.ProfileUpdate) error {
	for i, p := range f.players {
		if p.ID.Hex() == id {
			f.players[i].Name = update.Name
			f.players[i].Discord = update.Discord
			f.players[i].Bio = update.Bio
			f.players[i].Experience = update.Experience
			f.players[i].Position = update.Position
			f.players[i].Country = update.Country
			f.players[i].Timezone = update.Timezone
			f.writes++
			return nil
		}
	}
	return apperr.NotFound("Player not found")
}

func (f *fakeStore) UpdatePlayerPassword(_ context.Context, id string, hash string) error {
	for i, p := range f.players {
		if p.ID.Hex() == id {
			f.players[i].Password = hash
			f.writes++
			return nil
		}
	}
	return apperr.NotFound("Player not found")
}

func (f *fakeStore) ApprovePlayer(_ context.Context, id string, cardImage string) error {
	for i, p := range f.players {
		if p.ID.Hex() == id {
			f.players[i].Verified = true
			f.players[i].CardImage = cardImage
			f.writes++
			return nil
		}
	}
	return apperr.NotFound("Player not found")
}

func (f *fakeStore) UpdatePlayerStats(_ context.Context, name string, update model.StatsUpdate) error {
	for i, p := range f.players {
		if p.Name == name {
			f.players[i].Goals = update.Goals
			f.players[i].Assists = update.Assists
			f.players[i].Saves = update.Saves
			f.players[i].MVPs = update.MVPs
			f.players[i].Bio = update.Bio
			f.players[i].CardImage = update.CardImage
			f.writes++
			return nil
		}
	}
	return nil
}

func (f *fakeStore) DeletePlayer(_ context.Context, id string) error {
	for i, p := range f.players {
		if p.ID.Hex() == id {
			f.players = append(f.players[:i], f.players[i+1:]...)
			f.writes++
			return nil
		}
	}
	return nil
}

// --- Matches ---

func (f *fakeStore) ListMatches(context.Context) ([]model.Match, error) {
	return append([]model.Match(nil), f.matches...), nil
}

func (f *fakeStore) GetMatch(_ context.Context, id string) (*model.Match, error) {
	for _, m := range f.matches {
		if m.ID.Hex() == id {
			out := m
			return &out, nil
		}
	}
	return nil, apperr.NotFound("Match not found")
}

func (f *fakeStore) CreateMatch(_ context.Context, match model.Match) error {
	match.ID = primitive.NewObjectID()
	match.Status = model.MatchUpcoming
	f.matches = append(f.matches, match)
	f.writes++
	return nil
}

func (f *fakeStore) CompleteMatch(_ context.Context, id string, details model.MatchDetails) error {
	for i, m := range f.matches {
		if m.ID.Hex() == id {
			f.matches[i].Status = model.MatchCompleted
			f.matches[i].Details = &details
			f.writes++
			return nil
		}
	}
	return apperr.NotFound("Match not found")
}

func (f *fakeStore) DeleteMatch(_ context.Context, id string) error {
	for i, m := range f.matches {
		if m.ID.Hex() == id {
			f.matches = append(f.matches[:i], f.matches[i+1:]...)
			f.writes++
			return nil
		}
	}
	return nil
}

// --- Groups ---

func (f *fakeStore) ListGroups(context.Context) ([]model.Group, error) {
	out := make([]model.Group, len(f.groups))
	for i, g := range f.groups {
		out[i] = copyGroup(g)
	}
	return out, nil
}

func (f *fakeStore) GetGroup(_ context.Context, id string) (*model.Group, error) {
	for _, g := range f.groups {
		if g.ID.Hex() == id {
			out := copyGroup(g)
			return &out, nil
		}
	}
	return nil, apperr.NotFound("Group not found")
}

func (f *fakeStore) CreateGroup(_ context.Context, name string) error {
	f.groups = append(f.groups, model.Group{ID: primitive.NewObjectID(), Name: name, Teams: []model.Team{}})
	f.writes++
	return nil
}

func (f *fakeStore) ReplaceGroup(_ context.Context, group model.Group) error {
	for i, g := range f.groups {
		if g.ID == group.ID {
			f.groups[i] = copyGroup(group)
			f.writes++
			return nil
		}
	}
	return apperr.NotFound("Group not found")
}

func (f *fakeStore) DeleteGroup(_ context.Context, id string) error {
	for i, g := range f.groups {
		if g.ID.Hex() == id {
			f.groups = append(f.groups[:i], f.groups[i+1:]...)
			f.writes++
			return nil
		}
	}
	return nil
}

// --- Info ---

func (f *fakeStore) GetInfo(context.Context) (*model.Info, error) {
	out := copyInfo(f.info)
	return &out, nil
}

func (f *fakeStore) ReplaceInfo(_ context.Context, info model.Info) error {
	f.info = copyInfo(info)
	f.writes++
	return nil
}

func (f *fakeStore) SetLiveLink(_ context.Context, link string) error {
	f.info.LiveLink = link
	f.writes++
	return nil
}

func (f *fakeStore) Disconnect(context.Context) error {
	return nil
}
