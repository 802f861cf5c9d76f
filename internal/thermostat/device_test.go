package thermostat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/thermoparam/internal/display"
	"github.com/nerrad567/thermoparam/internal/infrastructure/config"
	"github.com/nerrad567/thermoparam/internal/infrastructure/logging"
	"github.com/nerrad567/thermoparam/internal/parameter"
)

func newTestDevice(t *testing.T) *Device {
	t.Helper()
	dev := NewDevice("TRM-1", nil)
	require.NoError(t, dev.Add("AL1", 140))
	require.NoError(t, dev.Add("AS", 0.25))
	require.NoError(t, dev.Add("MODE", parameter.Options{"A", "B", "C"}))
	return dev
}

func TestDevice_RenderInOrder(t *testing.T) {
	dev := newTestDevice(t)
	rec := display.NewRecorder()

	require.NoError(t, dev.Render(rec))

	assert.Equal(t, []display.Call{
		{Method: display.MethodPrintInt, Value: "IntView vprint 140"},
		{Method: display.MethodPrintFloat, Value: "FloatView vprint 0.25"},
		{Method: display.MethodPrintString, Value: "SelectView vprint A--B--C"},
	}, rec.Calls())
}

func TestDevice_RenderAll(t *testing.T) {
	dev := newTestDevice(t)

	var out bytes.Buffer
	rec := display.NewRecorder()

	require.NoError(t, dev.RenderAll(display.NewConsole(&out), rec))

	assert.Equal(t, "IntView vprint 140\nFloatView vprint 0.25\nSelectView vprint A--B--C\n", out.String())
	assert.Len(t, rec.Calls(), 3)
}

func TestDevice_RenderStopsAtFirstError(t *testing.T) {
	dev := newTestDevice(t)
	rec := display.NewRecorder(parameter.CapPrintInt)

	err := dev.Render(rec)

	require.ErrorIs(t, err, parameter.ErrUnsupportedDisplayCapability)
	assert.Contains(t, err.Error(), "TRM-1/AS")
	assert.Len(t, rec.Calls(), 1)
}

func TestDevice_RenderAllReportsDisplay(t *testing.T) {
	dev := newTestDevice(t)

	err := dev.RenderAll(display.NewRecorder(), display.NewRecorder(parameter.CapPrintString))

	require.ErrorIs(t, err, parameter.ErrUnsupportedDisplayCapability)
	assert.Contains(t, err.Error(), "display 1")
}

func TestDevice_Add(t *testing.T) {
	dev := newTestDevice(t)

	err := dev.Add("AL1", 150)
	assert.ErrorIs(t, err, ErrDuplicateParameter)

	err = dev.Add("NAME", "text")
	assert.ErrorIs(t, err, parameter.ErrUnsupportedValueKind)

	err = dev.Add("", 1)
	assert.ErrorIs(t, err, parameter.ErrInvalidName)

	assert.Len(t, dev.Parameters(), 3)
}

func TestDevice_Parameter(t *testing.T) {
	dev := newTestDevice(t)

	p, err := dev.Parameter("AS")
	require.NoError(t, err)
	assert.Equal(t, parameter.KindFloat, p.Value().Kind())

	_, err = dev.Parameter("AL9")
	assert.ErrorIs(t, err, ErrParameterNotFound)
}

func TestDevice_ParametersIsACopy(t *testing.T) {
	dev := newTestDevice(t)

	params := dev.Parameters()
	params[0] = nil

	assert.NotNil(t, dev.Parameters()[0])
	assert.Equal(t, "AL1", dev.Parameters()[0].Name())
}

func TestFromConfig(t *testing.T) {
	cfg := config.DeviceConfig{
		Name: "TRM-2",
		Parameters: []config.ParameterConfig{
			{Name: "SP", Value: config.ParameterValue{Raw: 21.0}},
			{Name: "HYS", Value: config.ParameterValue{Raw: 2}},
		},
	}

	var logs bytes.Buffer
	logger := logging.NewWithWriter(&logs, config.LoggingConfig{Level: "debug", Format: "json"}, "test")

	dev, err := FromConfig(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, "TRM-2", dev.Name())

	rec := display.NewRecorder()
	require.NoError(t, dev.Render(rec))
	assert.Equal(t, []display.Call{
		{Method: display.MethodPrintFloat, Value: "FloatView vprint 21.0"},
		{Method: display.MethodPrintInt, Value: "IntView vprint 2"},
	}, rec.Calls())

	assert.Contains(t, logs.String(), `"device":"TRM-2"`)
	assert.Contains(t, logs.String(), "parameter rendered")
}

func TestFromConfig_UnsupportedValue(t *testing.T) {
	cfg := config.DeviceConfig{
		Name: "TRM-2",
		Parameters: []config.ParameterConfig{
			{Name: "LABEL", Value: config.ParameterValue{Raw: "text"}},
		},
	}

	_, err := FromConfig(cfg, nil)
	assert.ErrorIs(t, err, parameter.ErrUnsupportedValueKind)
}
