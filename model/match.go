/* match.go
 * Match document and the details blob recorded when a match completes.
 */

package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	MatchUpcoming  = "upcoming"
	MatchCompleted = "completed"
)

type Match struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	TeamA   string             `bson:"teamA"`
	TeamB   string             `bson:"teamB"`
	LogoA   string             `bson:"logoA"`
	LogoB   string             `bson:"logoB"`
	Time    string             `bson:"time"`
	Tags    string             `bson:"tags"`
	IsLive  bool               `bson:"isLive"`
	Status  string             `bson:"status"`
	Details *MatchDetails      `bson:"details,omitempty"`
}

// MatchDetails is filled in when an admin records the outcome. The per-side
// player rows come from parallel form arrays on the admin page.
type MatchDetails struct {
	ScoreA       string              `bson:"scoreA,omitempty"`
	ScoreB       string              `bson:"scoreB,omitempty"`
	MVP          string              `bson:"mvp,omitempty"`
	Summary      string              `bson:"summary,omitempty"`
	TeamAPlayers []PlayerPerformance `bson:"teamAPlayers"`
	TeamBPlayers []PlayerPerformance `bson:"teamBPlayers"`
}

type PlayerPerformance struct {
	Name    string `bson:"name"`
	Type    string `bson:"type"`
	Value   string `bson:"value"`
	Assists string `bson:"assists"`
}
