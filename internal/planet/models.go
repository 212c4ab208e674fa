package planet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Planet is a record of the planets collection. Optional fields are omitted
// from JSON when the stored document does not carry them; _id and __v are
// passed through as stored.
type Planet struct {
	MongoID     any    `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	ID          int64  `json:"id" bson:"id"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	Velocity    string `json:"velocity,omitempty" bson:"velocity,omitempty"`
	Distance    string `json:"distance,omitempty" bson:"distance,omitempty"`
	Version     *int64 `json:"__v,omitempty" bson:"__v,omitempty"`
}

// LookupRequest is the body of POST /planet. ID is kept raw so that numeric
// strings can be coerced the same way numbers are.
type LookupRequest struct {
	ID json.RawMessage `json:"id"`
}

// CastError reports an id that cannot be turned into an integer key.
type CastError struct {
	Value string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cast to number failed for value %s at path \"id\"", e.Value)
}

// ErrUnmatchableID is returned for a finite id that is not a whole number in
// the int64 range. Record ids are integers, so such a lookup finds nothing.
var ErrUnmatchableID = errors.New("id cannot match any integer record")

// PlanetID coerces the request id into an integer the way a Number cast does:
// JSON numbers, numeric strings ("3", " 7 ", "3e0") and booleans (true is 1,
// false is 0) are accepted. A fractional or out-of-range id yields
// ErrUnmatchableID. Anything else is a *CastError.
func (r LookupRequest) PlanetID() (int64, error) {
	raw := bytes.TrimSpace(r.ID)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, &CastError{Value: "undefined"}
	}

	var text string
	switch {
	case bytes.Equal(raw, []byte("true")):
		return 1, nil
	case bytes.Equal(raw, []byte("false")):
		return 0, nil
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, &CastError{Value: string(raw)}
		}
		text = strings.TrimSpace(text)
	default:
		text = string(raw)
	}

	if id, err := strconv.ParseInt(text, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) {
		return 0, &CastError{Value: string(raw)}
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, ErrUnmatchableID
	}

	return int64(f), nil
}
