/* info.go
 * Mutations of the Info singleton's sub-collections: leaderboards, stories
 * and records. Same contract as editor.go: in-memory mutation, changed flag,
 * caller persists the whole document.
 *
 * Deletion is asymmetric on purpose: records delete by their synthetic id,
 * stories by position. The old site did both and callers encode both forms;
 * unifying them is a product decision, not a port detail.
 */

package league

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"leaguehub/model"
)

// UpsertLeaderboardEntry replaces the value at index when it designates an
// existing entry, otherwise appends a new one. The category is re-sorted
// descending by value after every call, so positions handed out before this
// call may now point at different entries.
func UpsertLeaderboardEntry(info *model.Info, category, index string, name string, value int) bool {
	entries := info.Leaderboards.Category(category)
	if entries == nil {
		return false
	}
	if i, ok := ParseIndex(index); ok && i < len(*entries) {
		(*entries)[i].Value = value
	} else {
		*entries = append(*entries, model.LeaderboardEntry{
			ID:    uuid.NewString(),
			Name:  name,
			Value: value,
		})
	}
	sort.SliceStable(*entries, func(a, b int) bool {
		return (*entries)[a].Value > (*entries)[b].Value
	})
	return true
}

// RemoveLeaderboardEntry removes the entry at index from the category. The
// order stays descending so no re-sort is needed, but later positions shift
// down by one.
func RemoveLeaderboardEntry(info *model.Info, category, index string) bool {
	entries := info.Leaderboards.Category(category)
	if entries == nil {
		return false
	}
	i, ok := ParseIndex(index)
	if !ok || i >= len(*entries) {
		return false
	}
	*entries = append((*entries)[:i], (*entries)[i+1:]...)
	return true
}

// AddStory appends a story stamped with a fresh synthetic id and the given
// publication time.
func AddStory(info *model.Info, title, body, image string, now time.Time) {
	info.Stories = append(info.Stories, model.Story{
		ID:    syntheticID(now),
		Date:  now.Format("1/2/2006"),
		Title: title,
		Body:  body,
		Image: image,
	})
}

// RemoveStory removes the story at index.
func RemoveStory(info *model.Info, index string) bool {
	i, ok := ParseIndex(index)
	if !ok || i >= len(info.Stories) {
		return false
	}
	info.Stories = append(info.Stories[:i], info.Stories[i+1:]...)
	return true
}

// AddRecord appends a record with a fresh synthetic id.
func AddRecord(info *model.Info, title, holder, value string, now time.Time) {
	info.Records = append(info.Records, model.Record{
		ID:     syntheticID(now),
		Title:  title,
		Holder: holder,
		Value:  value,
	})
}

// RemoveRecordByID removes the record with the given id wherever it sits.
func RemoveRecordByID(info *model.Info, id string) bool {
	for i := range info.Records {
		if info.Records[i].ID == id {
			info.Records = append(info.Records[:i], info.Records[i+1:]...)
			return true
		}
	}
	return false
}

// syntheticID matches the old site's Date.now() ids: unix milliseconds as a
// string, unique enough for rows created by a single admin.
func syntheticID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
