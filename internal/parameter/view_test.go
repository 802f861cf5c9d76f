package parameter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews_Render(t *testing.T) {
	tests := []struct {
		name string
		view View
		want call
	}{
		{
			name: "integer",
			view: NewIntegerView(140),
			want: call{method: "PrintInt", value: "IntView vprint 140"},
		},
		{
			name: "negative integer",
			view: NewIntegerView(int16(-3)),
			want: call{method: "PrintInt", value: "IntView vprint -3"},
		},
		{
			name: "float",
			view: NewFloatView(0.25),
			want: call{method: "PrintFloat", value: "FloatView vprint 0.25"},
		},
		{
			name: "integral float",
			view: NewFloatView(21.0),
			want: call{method: "PrintFloat", value: "FloatView vprint 21.0"},
		},
		{
			name: "select",
			view: NewSelectView(Options{"A", "B", "C"}),
			want: call{method: "PrintString", value: "SelectView vprint A--B--C"},
		},
		{
			name: "single option",
			view: NewSelectView([]string{"auto"}),
			want: call{method: "PrintString", value: "SelectView vprint auto"},
		},
		{
			name: "no options",
			view: NewSelectView(Options{}),
			want: call{method: "PrintString", value: "SelectView vprint "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDisplay{}

			require.NoError(t, tt.view.Render(d))
			assert.Equal(t, []call{tt.want}, d.calls)
		})
	}
}

func TestViews_NilDisplay(t *testing.T) {
	views := []View{
		NewIntegerView(1),
		NewFloatView(1.5),
		NewSelectView(Options{"A"}),
	}

	for _, v := range views {
		err := v.Render(nil)
		assert.ErrorIs(t, err, ErrUnsupportedDisplayCapability)
	}
}

func TestViews_MissingCapability(t *testing.T) {
	d := &limitedDisplay{fakeDisplay{caps: map[Capability]bool{CapPrintString: true}}}

	err := NewIntegerView(5).Render(d)
	require.ErrorIs(t, err, ErrUnsupportedDisplayCapability)
	assert.Contains(t, err.Error(), string(CapPrintInt))

	err = NewFloatView(0.5).Render(d)
	require.ErrorIs(t, err, ErrUnsupportedDisplayCapability)

	require.NoError(t, NewSelectView(Options{"on", "off"}).Render(d))
	assert.Equal(t, []call{{method: "PrintString", value: "SelectView vprint on--off"}}, d.calls)
}

func TestViews_DisplayErrorIsWrapped(t *testing.T) {
	d := &fakeDisplay{err: errPanelOffline}

	err := NewIntegerView(1).Render(d)
	assert.ErrorIs(t, err, errPanelOffline)
	assert.NotErrorIs(t, err, ErrUnsupportedDisplayCapability)
}

func TestSelectView_CopiesOptions(t *testing.T) {
	src := Options{"A", "B"}
	v := NewSelectView(src)
	src[0] = "Z"

	d := &fakeDisplay{}
	require.NoError(t, v.Render(d))
	assert.Equal(t, "SelectView vprint A--B", d.calls[0].value)
}
