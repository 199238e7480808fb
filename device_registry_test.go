//
// Copyright (c) 2024 Matthew Penner
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package hotasmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevices(t *testing.T) {
	devices := Devices()
	require.Len(t, devices, 3)
	assert.Equal(t, JoystickName, devices[0].Name)
	assert.Equal(t, ThrottleName, devices[1].Name)
	assert.Equal(t, PedalsName, devices[2].Name)

	assert.Len(t, Joystick.Controls, 31)
	assert.Len(t, Throttle.Controls, 45)
	assert.Len(t, Pedals.Controls, 3)

	_, ok := Device("saitek_x52")
	assert.False(t, ok)
}

func TestControlNamesAreUnique(t *testing.T) {
	for _, d := range Devices() {
		seen := make(map[string]bool)
		for _, name := range d.ControlNames() {
			assert.False(t, seen[name], "%s: duplicate control %s", d.Name, name)
			seen[name] = true
		}
	}
}

func TestDeviceType_Control(t *testing.T) {
	c, ok := Throttle.Control("S29_RightEngineIdle")
	require.True(t, ok)
	assert.Equal(t, Control{
		Name:    "S29_RightEngineIdle",
		Left:    569,
		Top:     713,
		Width:   114,
		Height:  22,
		GameKey: "Joy_29",
		Type:    Sticky,
		HJust:   0.5,
		VJust:   0.5,
	}, c)
	assert.Equal(t, 569, c.Box().Min.X)
	assert.Equal(t, 713+22, c.Box().Max.Y)

	_, ok = Throttle.Control("S1_Trigger_FirstStage")
	assert.False(t, ok)
}

func TestDeviceType_ControlsForKey(t *testing.T) {
	controls := Joystick.ControlsForKey("Joy_YAxis")
	require.Len(t, controls, 2)
	assert.Equal(t, "Stick_Forward", controls[0].Name)
	assert.Equal(t, "Stick_Backward", controls[1].Name)

	assert.Empty(t, Joystick.ControlsForKey("Joy_99"))
	// The hat diagonals have no key and must never match an empty one.
	assert.Empty(t, Joystick.ControlsForKey(""))
}

func TestDiagonalsHaveNoType(t *testing.T) {
	for _, name := range []string{"TrimHat_UpLeft", "TrimHat_UpRight", "TrimHat_DownLeft", "TrimHat_DownRight"} {
		c, ok := Joystick.Control(name)
		require.True(t, ok, name)
		assert.Equal(t, Unknown, c.Type, name)
		assert.Empty(t, c.GameKey, name)
	}
}

func TestPedals(t *testing.T) {
	for _, c := range Pedals.Controls {
		assert.Equal(t, 325, c.Left)
		assert.Equal(t, 0.0, c.HJust)
		assert.Equal(t, 0.5, c.VJust)
		assert.Equal(t, Analogue, c.Type)
	}
	require.Len(t, Pedals.Labels, 3)
	assert.Equal(t, "Pedals: Rudder\n(Z rotation)", Pedals.Labels[0].Text)
	assert.Equal(t, 1875.0, Pedals.Labels[0].Y)
}

func TestControlType_String(t *testing.T) {
	assert.Equal(t, "analogue", Analogue.String())
	assert.Equal(t, "momentary", Momentary.String())
	assert.Equal(t, "sticky", Sticky.String())
	assert.Equal(t, "unknown", Unknown.String())
}

func TestParseRGB(t *testing.T) {
	for i, tcase := range []struct {
		input         string
		expected      RGB
		errorExpected bool
	}{
		{"255,0,255", RGB{255, 0, 255}, false},
		{"0, 100, 0", RGB{0, 100, 0}, false},
		{"0,0", RGB{}, true},
		{"0,0,0,0", RGB{}, true},
		{"0,256,0", RGB{}, true},
		{"-1,0,0", RGB{}, true},
		{"red,0,0", RGB{}, true},
	} {
		c, err := ParseRGB(tcase.input)
		if tcase.errorExpected {
			assert.Error(t, err, "test case %d", i)
			continue
		}
		require.NoError(t, err, "test case %d", i)
		assert.Equal(t, tcase.expected, c, "test case %d", i)
		assert.Equal(t, tcase.expected, mustParseRGB(t, c.String()), "test case %d", i)
	}
}

func TestRGB_RGBA(t *testing.T) {
	r, g, b, a := RGB{R: 255}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func mustParseRGB(t *testing.T, s string) RGB {
	t.Helper()
	c, err := ParseRGB(s)
	require.NoError(t, err)
	return c
}
