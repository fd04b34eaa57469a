package bus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dbwd/geometry"
)

func TestDecodeRoundTrip(t *testing.T) {
	event := PathEvent{Waypoints: []Waypoint{
		{Pose: Pose{Position: Vector3{X: 1, Y: 2}, Orientation: geometry.Quaternion{W: 1}}},
		{Pose: Pose{Position: Vector3{X: 3, Y: 4}, Orientation: geometry.Quaternion{W: 1}}},
	}}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	got, ok := decode[PathEvent](data)
	require.True(t, ok)
	assert.Equal(t, event, got)
}

func TestDecodeStateEvent(t *testing.T) {
	state := DbwState{Enabled: true, Cte: -1.5, HeadingError: 0.2, BrakeTorque: 400}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	got, ok := decode[DbwState](data)
	require.True(t, ok)
	assert.Equal(t, state, got)
}

func TestDecodeEmptyPayload(t *testing.T) {
	got, ok := decode[Twist](nil)
	assert.False(t, ok)
	assert.Equal(t, Twist{}, got)

	got, ok = decode[Twist]([]byte{})
	assert.False(t, ok)
	assert.Equal(t, Twist{}, got)
}

func TestDecodeMalformedPayload(t *testing.T) {
	_, ok := decode[Twist]([]byte(`{"linear": {`))
	assert.False(t, ok)

	_, ok = decode[Twist]([]byte("not json at all"))
	assert.False(t, ok)
}

func TestDecodeMissingKeysZeroFill(t *testing.T) {
	got, ok := decode[ThrottleCommand]([]byte(`{"enable": true}`))
	require.True(t, ok)
	assert.True(t, got.Enable)
	assert.Equal(t, 0.0, got.PedalCmd)
	assert.Equal(t, "", got.CmdType)
}

func TestGetSegmentSize(t *testing.T) {
	assert.Equal(t, int64(DEFAULT_SEGMENT_SIZE), GetSegmentSize(CurrentPoseChannel))
	// path events carry a full waypoint list, so the channel gets a bigger ring
	assert.Greater(t, GetSegmentSize(PlanPathChannel), GetSegmentSize(TwistCommandChannel))
}
