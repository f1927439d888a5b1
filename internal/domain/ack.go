package domain

// UpdateAck mirrors the acknowledgment shape the Mongo driver returns
// for updateOne, which PUT /user and PUT /addmatch pass through to the
// client instead of the updated document.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// InsertAck is the insertOne acknowledgment POST /message passes through.
type InsertAck struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}
