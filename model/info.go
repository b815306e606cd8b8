/* info.go
 * The Info singleton: site-wide settings plus the leaderboard, record and
 * story lists. Exactly one document exists per database; the store creates
 * it with zero values on first read.
 */

package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Info struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	LiveLink     string             `bson:"liveLink"`
	Leaderboards Leaderboards       `bson:"leaderboards"`
	Records      []Record           `bson:"records"`
	Stories      []Story            `bson:"stories"`
}

// Leaderboards holds one ordered list per stat category, each kept sorted
// descending by value.
type Leaderboards struct {
	Scorers []LeaderboardEntry `bson:"scorers"`
	Saves   []LeaderboardEntry `bson:"saves"`
	Assists []LeaderboardEntry `bson:"assists"`
}

// Category returns a pointer to the named category's entries, or nil for an
// unknown category name.
func (l *Leaderboards) Category(name string) *[]LeaderboardEntry {
	switch name {
	case "scorers":
		return &l.Scorers
	case "saves":
		return &l.Saves
	case "assists":
		return &l.Assists
	default:
		return nil
	}
}

type LeaderboardEntry struct {
	ID    string `bson:"id,omitempty"`
	Name  string `bson:"name"`
	Value int    `bson:"value"`
}

// Record is a league record row. Deletion is by the synthetic ID.
type Record struct {
	ID     string `bson:"id"`
	Title  string `bson:"title"`
	Holder string `bson:"holder"`
	Value  string `bson:"value"`
}

// Story is a news item. Deletion is by position, not ID; the asymmetry with
// Record is inherited behavior kept on purpose.
type Story struct {
	ID    string `bson:"id"`
	Date  string `bson:"date"`
	Title string `bson:"title"`
	Body  string `bson:"body"`
	Image string `bson:"image,omitempty"`
}

// NewInfo returns the zero-value singleton used on first read.
func NewInfo() Info {
	return Info{
		Leaderboards: Leaderboards{
			Scorers: []LeaderboardEntry{},
			Saves:   []LeaderboardEntry{},
			Assists: []LeaderboardEntry{},
		},
		Records: []Record{},
		Stories: []Story{},
	}
}
