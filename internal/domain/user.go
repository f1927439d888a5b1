package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a document in the "users" collection. user_id is the
// application-generated identifier; _id stays internal to Mongo.
// hashedPassword is stored (and currently returned) alongside the
// profile fields the client edits.
type User struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID         string             `json:"user_id" bson:"user_id"`
	Email          string             `json:"email" bson:"email"`
	HashedPassword string             `json:"hashedPassword,omitempty" bson:"hashedPassword,omitempty"`
	FirstName      string             `json:"first_name,omitempty" bson:"first_name,omitempty"`
	DoBDay         string             `json:"DoB_day,omitempty" bson:"DoB_day,omitempty"`
	DoBMonth       string             `json:"DoB_month,omitempty" bson:"DoB_month,omitempty"`
	DoBYear        string             `json:"DoB_year,omitempty" bson:"DoB_year,omitempty"`
	ShowGender     bool               `json:"show_gender" bson:"show_gender"`
	GenderIdentity string             `json:"gender_identity,omitempty" bson:"gender_identity,omitempty"`
	GenderInterest string             `json:"gender_interest,omitempty" bson:"gender_interest,omitempty"`
	URL            string             `json:"url,omitempty" bson:"url,omitempty"`
	About          string             `json:"about,omitempty" bson:"about,omitempty"`
	Matches        []MatchRef         `json:"matches" bson:"matches"`
}

// MatchRef is a one-directional reference to another user. Appending
// a MatchRef to A's matches never touches B's document.
type MatchRef struct {
	UserID string `json:"user_id" bson:"user_id"`
}

// ProfileUpdate holds the fixed set of fields PUT /user replaces.
type ProfileUpdate struct {
	UserID         string
	FirstName      string
	DoBDay         string
	DoBMonth       string
	DoBYear        string
	ShowGender     bool
	GenderIdentity string
	GenderInterest string
	URL            string
	About          string
	Matches        []MatchRef
}
