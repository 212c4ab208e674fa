package planet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRequestPlanetID(t *testing.T) {
	tests := []struct {
		body        string
		want        int64
		castErr     bool
		unmatchable bool
	}{
		{body: `{"id":3}`, want: 3},
		{body: `{"id":3.0}`, want: 3},
		{body: `{"id":"42"}`, want: 42},
		{body: `{"id":" 7 "}`, want: 7},
		{body: `{"id":-1}`, want: -1},
		{body: `{"id":true}`, want: 1},
		{body: `{"id":false}`, want: 0},
		{body: `{"id":"3e0"}`, want: 3},
		{body: `{"id":3.5}`, unmatchable: true},
		{body: `{"id":"3.5"}`, unmatchable: true},
		{body: `{"id":1e300}`, unmatchable: true},
		{body: `{"id":""}`, castErr: true},
		{body: `{"id":"NaN"}`, castErr: true},
		{body: `{"id":[3]}`, castErr: true},
		{body: `{"id":"earth"}`, castErr: true},
		{body: `{"id":{"$gt":1}}`, castErr: true},
		{body: `{"id":null}`, castErr: true},
		{body: `{}`, castErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req LookupRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			id, err := req.PlanetID()
			if tt.unmatchable {
				assert.ErrorIs(t, err, ErrUnmatchableID)
				return
			}
			if tt.castErr {
				var castErr *CastError
				assert.ErrorAs(t, err, &castErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestPlanetJSONOmitsMissingFields(t *testing.T) {
	data, err := json.Marshal(Planet{Name: "Earth", ID: 3, Description: "Blue planet"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Earth","id":3,"description":"Blue planet"}`, string(data))
}

func TestPlanetJSONPassesStoredMetadata(t *testing.T) {
	version := int64(0)
	data, err := json.Marshal(Planet{MongoID: "64b7f0c2a1e4d3b2c1a09f8e", Name: "Earth", ID: 3, Version: &version})
	require.NoError(t, err)

	assert.JSONEq(t, `{"_id":"64b7f0c2a1e4d3b2c1a09f8e","name":"Earth","id":3,"__v":0}`, string(data))
}
