package request

// Request is the transport-free handler input: a decoded payload plus the
// caller identity the authentication collaborator resolved. An empty
// CallerID means no identity was supplied.
type Request struct {
	Payload  map[string]any
	CallerID string
}

func New(payload map[string]any) Request {
	return Request{Payload: payload}
}

func NewAuthenticated(payload map[string]any, callerID string) Request {
	return Request{Payload: payload, CallerID: callerID}
}

// StringField returns the payload value as a string, or "" when absent or
// not a string.
func (r Request) StringField(name string) string {
	if value, ok := r.Payload[name].(string); ok {
		return value
	}

	return ""
}

// IntField coerces the payload value to an int. JSON decoding hands
// numbers over as float64, so both forms are accepted.
func (r Request) IntField(name string, fallback int) int {
	if value, ok := r.intValue(name); ok {
		return value
	}

	return fallback
}

// OptionalIntField distinguishes an absent value (nil) from a present one.
func (r Request) OptionalIntField(name string) *int {
	if value, ok := r.intValue(name); ok {
		return &value
	}

	return nil
}

func (r Request) intValue(name string) (int, bool) {
	switch value := r.Payload[name].(type) {
	case int:
		return value, true
	case float64:
		return int(value), true
	default:
		return 0, false
	}
}
