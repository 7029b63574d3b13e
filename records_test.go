package daikinhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseControlInfo(t *testing.T) {
	raw, err := DecodeResponse("ret=OK,pow=1,mode=3,stemp=24.0,shum=-")
	require.NoError(t, err)

	info := ParseControlInfo(raw)

	assert.True(t, info.Power)
	assert.Equal(t, ModeCool, info.Mode)
	require.NotNil(t, info.TargetTemp)
	assert.Equal(t, 24.0, *info.TargetTemp)
	assert.Nil(t, info.TargetHumidity)
	assert.Equal(t, "", info.FanRate)
	assert.Equal(t, raw, info.Raw)
}

func TestParseControlInfoFull(t *testing.T) {
	raw, err := DecodeResponse("ret=OK,pow=0,mode=4,adv=,stemp=22.0,shum=0,dt1=25.0,dt2=M,f_rate=A,f_dir=3,b_mode=4,b_stemp=22.0,b_shum=0,alert=255")
	require.NoError(t, err)

	info := ParseControlInfo(raw)

	assert.False(t, info.Power)
	assert.Equal(t, ModeHeat, info.Mode)
	require.NotNil(t, info.TargetHumidity)
	assert.Equal(t, 0.0, *info.TargetHumidity)
	assert.Equal(t, "A", info.FanRate)
	assert.Equal(t, "3", info.FanDir)
	assert.Equal(t, 255, info.Alert)
	assert.Equal(t, ModeHeat, info.BackupMode)
	require.NotNil(t, info.BackupTargetHumidity)
	assert.Equal(t, "25.0", info.Raw["dt1"])
	assert.Equal(t, "22.0", info.Raw["b_stemp"])
}

func TestParseGeneralInfo(t *testing.T) {
	// the name field is encoded twice by the appliance
	raw, err := DecodeResponse("ret=OK,type=aircon,reg=eu,dst=1,ver=1_2_54,rev=203DE8C,pow=1,err=0,location=0," +
		"name=%254c%2569%2576%2569%256e%2567,icon=0,method=home%20only,port=30050,id=,pw=,lpw_flag=0,adp_kind=3," +
		"pv=2,cpv=2,cpv_minor=00,led=1,en_setzone=1,mac=A0B1C2D3E4F5,adp_mode=run,en_hol=0,grp_name=,en_grp=0")
	require.NoError(t, err)

	info := ParseGeneralInfo(raw)

	assert.Equal(t, "aircon", info.Type)
	assert.Equal(t, "eu", info.Region)
	assert.Equal(t, "Living", info.Name)
	assert.Equal(t, "1_2_54", info.Version)
	assert.Equal(t, "home only", info.Method)
	assert.Equal(t, "run", info.Adapter)
	assert.True(t, info.Power)
	assert.True(t, info.LED)
	assert.False(t, info.Holiday)
	assert.Equal(t, 30050, info.Port)
	assert.Equal(t, 3, info.AdapterKind)
	assert.Equal(t, 2, info.ProtocolVersion)
	assert.Equal(t, 0, info.FirmwareMinor)
	assert.Equal(t, "A0B1C2D3E4F5", info.MAC)
	assert.Equal(t, "A0:B1:C2:D3:E4:F5", info.FormattedMAC())
	assert.Equal(t, "203DE8C", info.Raw["rev"])
}

func TestParseGeneralInfoPlainName(t *testing.T) {
	info := ParseGeneralInfo(RawRecord{"name": "Bedroom 100%"})
	assert.Equal(t, "Bedroom 100%", info.Name)
}

func TestParseSensorInfo(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		inside   *float64
		outside  *float64
		humidity *float64
		cmpfreq  int
	}{
		{
			name:     "all sensors",
			body:     "ret=OK,htemp=23.5,hhum=45,otemp=8.0,err=0,cmpfreq=32",
			inside:   Float(23.5),
			outside:  Float(8),
			humidity: Float(45),
			cmpfreq:  32,
		},
		{
			name:    "no humidity sensor",
			body:    "ret=OK,htemp=23.0,hhum=-,otemp=-2,err=0,cmpfreq=0",
			inside:  Float(23),
			outside: Float(-2),
		},
		{
			name: "outdoor unit offline",
			body: "ret=OK,htemp=--,hhum=--,otemp=--,err=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := DecodeResponse(tt.body)
			require.NoError(t, err)

			info := ParseSensorInfo(raw)
			assert.Equal(t, tt.inside, info.InsideTemp)
			assert.Equal(t, tt.outside, info.OutsideTemp)
			assert.Equal(t, tt.humidity, info.InsideHumidity)
			assert.Equal(t, tt.cmpfreq, info.CompressorFrequency)
		})
	}
}

func TestFormatMAC(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid MAC",
			input:    "112233445566",
			expected: "11:22:33:44:55:66",
		},
		{
			name:     "invalid length",
			input:    "1122334455",
			expected: "1122334455",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatMAC(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
