/* player.go
 * Player profile document as stored in the players collection.
 */

package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Player is a registered league member. Name is unique case-insensitively.
// Password holds a bcrypt hash for new registrations; rows migrated from the
// old site may still carry plaintext, which login tolerates and re-hashes.
type Player struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Discord    string             `bson:"discord,omitempty"`
	Password   string             `bson:"password"`
	CardImage  string             `bson:"cardImage"`
	Verified   bool               `bson:"verified"`
	Goals      int                `bson:"goals"`
	Assists    int                `bson:"assists"`
	Saves      int                `bson:"saves"`
	MVPs       int                `bson:"mvps"`
	Position   string             `bson:"position"`
	Country    string             `bson:"country"`
	Timezone   string             `bson:"timezone"`
	Experience string             `bson:"experience,omitempty"`
	Bio        string             `bson:"bio,omitempty"`
	Views      []string           `bson:"views,omitempty"`
}

// DefaultPosition is assigned when a registration does not pick one.
const DefaultPosition = "FWD"

// ProfileUpdate carries the self-service editable fields.
type ProfileUpdate struct {
	Name       string `bson:"name"`
	Discord    string `bson:"discord"`
	Bio        string `bson:"bio"`
	Experience string `bson:"experience"`
	Position   string `bson:"position"`
	Country    string `bson:"country"`
	Timezone   string `bson:"timezone"`
}

// StatsUpdate carries the admin-editable market card fields. Counters are
// parsed from form input with non-numeric values treated as zero.
type StatsUpdate struct {
	Goals     int    `bson:"goals"`
	Assists   int    `bson:"assists"`
	Saves     int    `bson:"saves"`
	MVPs      int    `bson:"mvps"`
	Bio       string `bson:"bio"`
	CardImage string `bson:"cardImage"`
}
