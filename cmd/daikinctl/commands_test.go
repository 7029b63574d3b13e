package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jattkaim/daikinhttp"
)

// fakeAppliance serves canned answers and remembers the last write query.
type fakeAppliance struct {
	mu        sync.Mutex
	lastWrite string
	writes    int
}

func (f *fakeAppliance) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.URL.Path {
	case "/common/basic_info":
		_, _ = w.Write([]byte("ret=OK,type=aircon,reg=eu,ver=1_2_54,pow=1,name=%4f%66%66%69%63%65,mac=112233445566"))
	case "/aircon/get_sensor_info":
		_, _ = w.Write([]byte("ret=OK,htemp=22.5,hhum=-,otemp=--,err=0"))
	case "/aircon/get_control_info":
		_, _ = w.Write([]byte("ret=OK,pow=1,mode=3,stemp=24.0,shum=0,f_rate=A,f_dir=0"))
	case "/aircon/set_control_info":
		f.writes++
		f.lastWrite = r.URL.RawQuery
		_, _ = w.Write([]byte("ret=OK"))
	case "/common/reboot":
		_, _ = w.Write([]byte("ret=OK"))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func startAppliance(t *testing.T) (*fakeAppliance, string) {
	t.Helper()
	testChdir(t, t.TempDir())
	fake := &fakeAppliance{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return fake, strings.TrimPrefix(server.URL, "http://")
}

func TestMissingHost(t *testing.T) {
	testChdir(t, t.TempDir())
	_, err := run(t, "info")
	var cfgErr *daikinhttp.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestInfoCommand(t *testing.T) {
	_, host := startAppliance(t)

	out, err := run(t, "--host", host, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:     Office")
	assert.Contains(t, out, "MAC:      11:22:33:44:55:66")

	out, err = run(t, "--host", host, "--json", "info")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Office"`)
}

func TestSensorCommand(t *testing.T) {
	_, host := startAppliance(t)

	out, err := run(t, "--host", host, "sensor")
	require.NoError(t, err)
	assert.Contains(t, out, "Inside:   22.5°C")
	assert.Contains(t, out, "Outside:  n/a")
}

func TestSetCommand(t *testing.T) {
	fake, host := startAppliance(t)

	out, err := run(t, "--host", host, "set", "--temp", "26", "--fan-rate", "silence")
	require.NoError(t, err)
	assert.Contains(t, out, "Mode:     cool")
	assert.Equal(t, 1, fake.writes)
	assert.Equal(t, "f_dir=0&f_rate=B&mode=3&pow=1&shum=0&stemp=26.0", fake.lastWrite)
}

func TestSetCommandValidation(t *testing.T) {
	fake, host := startAppliance(t)

	_, err := run(t, "--host", host, "set")
	assert.EqualError(t, err, "nothing to set")

	_, err = run(t, "--host", host, "set", "--power", "maybe")
	assert.Error(t, err)

	_, err = run(t, "--host", host, "set", "--mode", "turbo")
	assert.Error(t, err)

	assert.Equal(t, 0, fake.writes)
}

func TestRebootCommand(t *testing.T) {
	_, host := startAppliance(t)

	out, err := run(t, "--host", host, "reboot")
	require.NoError(t, err)
	assert.Contains(t, out, "Reboot requested")
}
