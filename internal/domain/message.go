package domain

// Message documents carry whatever fields the client sends, so they are
// kept as raw maps rather than a fixed struct. Only the two routing
// fields are ever queried on.
type Message = map[string]interface{}

const (
	MessageFromField = "from_userId"
	MessageToField   = "to_userId"
)
