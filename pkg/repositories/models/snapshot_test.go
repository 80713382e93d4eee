package models

import (
	"testing"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_appliesDefaults(t *testing.T) {
	s, err := Decode([]byte(`{"age": 27, "meters": {"freeze": {"charges": 3}}}`))
	require.NoError(t, err)

	assert.Equal(t, SnapshotVersion, s.Version)
	assert.Equal(t, 27, s.Age)
	assert.Equal(t, types.StageAdult, s.Stage)
	assert.Equal(t, constants.MaxHealth, s.HeroHealth)
	assert.Equal(t, constants.DefaultDissolveCap, s.DissolveCap)
	assert.Equal(t, 3, s.Meters[MeterFreeze].Charges)
	assert.Equal(t, constants.BlinkCharges, s.Meters[MeterBlink].Charges)
	assert.Equal(t, constants.HeroJumpCharges, s.AgeMeters[AgeMeterJump].Charges)
}

func TestDecode_normalizes(t *testing.T) {
	s, err := Decode([]byte(`{"age": 45, "stage": "child", "hero_health": 250, "dissolve_cap": 0}`))
	require.NoError(t, err)
	assert.Equal(t, types.StageMature, s.Stage)
	assert.Equal(t, constants.MaxHealth, s.HeroHealth)
	assert.Equal(t, constants.DefaultDissolveCap, s.DissolveCap)
}

func TestDecode_errors(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"version": 99}`))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	tick := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in := DefaultSnapshot()
	in.Seed = 4242
	in.Active = []types.Coord{{X: 1, Y: 2}}
	in.Meters[MeterLift] = MeterSnapshot{Charges: 1, LastTick: &tick, InitialGranted: true}
	in.WallOverrides = []WallOverride{{Cell: types.Coord{X: 3, Y: 3}, Dir: types.East, Closed: false}}

	data, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, in.Seed, out.Seed)
	assert.Equal(t, in.Active, out.Active)
	assert.True(t, tick.Equal(*out.Meters[MeterLift].LastTick))
	assert.True(t, out.Meters[MeterLift].InitialGranted)
	assert.Equal(t, in.WallOverrides, out.WallOverrides)
}
