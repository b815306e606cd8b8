/* group.go
 * Group standings document: an ordered list of teams, each with an ordered
 * roster. Teams and roster entries are addressed by position in request
 * parameters; the uuid IDs exist so removals inside a mutation re-locate the
 * element by identity rather than trusting a possibly stale index.
 */

package model

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Group struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Teams []Team             `bson:"teams"`
}

type Team struct {
	ID     string        `bson:"id,omitempty"`
	Name   string        `bson:"name"`
	Logo   string        `bson:"logo"`
	MP     int           `bson:"mp"`
	Wins   int           `bson:"wins"`
	Losses int           `bson:"loses"`
	Points int           `bson:"pts"`
	Roster []RosterEntry `bson:"roster"`
}

type RosterEntry struct {
	ID        string `bson:"id,omitempty"`
	Name      string `bson:"name"`
	IsManager bool   `bson:"isManager"`
}

// NewTeam returns a team with zeroed counters and an empty roster.
func NewTeam(name, logo string) Team {
	return Team{
		ID:     uuid.NewString(),
		Name:   name,
		Logo:   logo,
		Roster: []RosterEntry{},
	}
}

func NewRosterEntry(name string, isManager bool) RosterEntry {
	return RosterEntry{
		ID:        uuid.NewString(),
		Name:      name,
		IsManager: isManager,
	}
}

// TeamAt returns the team at position i, or nil when out of range.
func (g *Group) TeamAt(i int) *Team {
	if i < 0 || i >= len(g.Teams) {
		return nil
	}
	return &g.Teams[i]
}
