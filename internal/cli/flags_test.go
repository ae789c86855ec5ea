package cli

import (
	"testing"

	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionValue(t *testing.T) {
	var m domain.MissionType
	v := missionValue{&m}

	require.NoError(t, v.Set("work"))
	assert.Equal(t, domain.MissionWork, m)
	assert.Equal(t, "work", v.String())
	assert.Equal(t, "mission", v.Type())

	assert.Error(t, v.Set("nap"))
	assert.Equal(t, domain.MissionWork, m)
}

func TestAircraftValue(t *testing.T) {
	var a domain.AircraftID
	v := aircraftValue{&a}

	require.NoError(t, v.Set(" B747 "))
	assert.Equal(t, domain.AircraftB747, a)

	err := v.Set("concorde")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c172")
	assert.Equal(t, domain.AircraftB747, a)
}

func TestCabinValue(t *testing.T) {
	var c domain.CabinID
	v := cabinValue{&c}

	require.NoError(t, v.Set("Business"))
	assert.Equal(t, domain.CabinBusiness, c)
	assert.Error(t, v.Set("cargo"))
}

func TestFlightStart_RejectsUnknownAircraftFlag(t *testing.T) {
	env := newTestEnv(t)
	_, err := executeCmd(t, env.app, "flight", "start", "--title", "Essay", "--aircraft", "concorde")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown aircraft")
}
