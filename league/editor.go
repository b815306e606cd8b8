/* editor.go
 * Positional mutation of the teams-within-group and roster-within-team
 * sequences. All functions mutate the group in memory and report whether
 * anything changed; the caller persists the whole group document afterwards.
 * Out-of-range positions are silent no-ops: the old site redirected to the
 * success page regardless and clients depend on that.
 */

package league

import (
	"strconv"

	"leaguehub/model"
)

// TeamUpsert carries the fields of an update-team form submission.
type TeamUpsert struct {
	Name   string
	Logo   string
	MP     int
	Wins   int
	Losses int
	Points int
}

// ParseIndex parses a positional form parameter. The empty string is the
// "append" signal and any non-numeric or negative value is invalid.
func ParseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// UpsertTeam applies an update-team submission. An index designating an
// existing team merges only the counter fields, leaving name, logo and
// roster untouched. Any other index — empty, malformed or past the end —
// appends a fresh zero-counter team when a name was supplied, and is a
// no-op otherwise.
func UpsertTeam(g *model.Group, index string, in TeamUpsert) bool {
	if i, ok := ParseIndex(index); ok {
		if t := g.TeamAt(i); t != nil {
			t.MP = in.MP
			t.Wins = in.Wins
			t.Losses = in.Losses
			t.Points = in.Points
			return true
		}
	}
	if in.Name == "" {
		return false
	}
	g.Teams = append(g.Teams, model.NewTeam(in.Name, in.Logo))
	return true
}

// AddRosterEntry appends a roster entry to the team at teamIndex. The player
// name must already be resolved against the players collection; this only
// performs the positional part.
func AddRosterEntry(g *model.Group, teamIndex string, playerName string, isManager bool) bool {
	i, ok := ParseIndex(teamIndex)
	if !ok {
		return false
	}
	t := g.TeamAt(i)
	if t == nil {
		return false
	}
	t.Roster = append(t.Roster, model.NewRosterEntry(playerName, isManager))
	return true
}

// RemoveRosterEntry removes the roster entry at rosterIndex from the team at
// teamIndex, shifting later entries down by one. The entry is re-located by
// its id before the splice so the removal cannot hit a neighbour.
func RemoveRosterEntry(g *model.Group, teamIndex, rosterIndex string) bool {
	ti, ok := ParseIndex(teamIndex)
	if !ok {
		return false
	}
	t := g.TeamAt(ti)
	if t == nil {
		return false
	}
	ri, ok := ParseIndex(rosterIndex)
	if !ok || ri >= len(t.Roster) {
		return false
	}
	// Entries written by the old site carry no id; splice positionally then.
	if id := t.Roster[ri].ID; id != "" {
		for i := range t.Roster {
			if t.Roster[i].ID == id {
				ri = i
				break
			}
		}
	}
	t.Roster = append(t.Roster[:ri], t.Roster[ri+1:]...)
	return true
}

// RemoveTeam removes the team at teamIndex, shifting later teams down by one.
func RemoveTeam(g *model.Group, teamIndex string) bool {
	i, ok := ParseIndex(teamIndex)
	if !ok || g.TeamAt(i) == nil {
		return false
	}
	g.Teams = append(g.Teams[:i], g.Teams[i+1:]...)
	return true
}
