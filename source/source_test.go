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

package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewpi/hotasmap"
)

func TestParseFormat(t *testing.T) {
	for i, tcase := range []struct {
		input         string
		expected      Format
		errorExpected bool
	}{
		{"json", JSON, false},
		{" ED ", Elite, false},
		{"Demo", Demo, false},
		{"blank", Blank, false},
		{"debug", Debug, false},
		{"xml", "", true},
		{"", "", true},
	} {
		f, err := ParseFormat(tcase.input)
		if tcase.errorExpected {
			assert.ErrorIs(t, err, ErrUnknownFormat, "test case %d", i)
			continue
		}
		require.NoError(t, err, "test case %d", i)
		assert.Equal(t, tcase.expected, f, "test case %d", i)
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []Format{Blank, Debug, Demo, Elite, JSON}, Formats())
	for _, f := range Formats() {
		assert.NotEmpty(t, f.Description(), f)
		assert.Contains(t, FormatHelp(), string(f)+": "+f.Description())
	}
	assert.True(t, Elite.NeedsInput())
	assert.True(t, JSON.NeedsInput())
	assert.False(t, Demo.NeedsInput())
}

func TestLoad_Blank(t *testing.T) {
	m, err := Load(Options{Format: Blank})
	require.NoError(t, err)
	require.Len(t, m, 3)
	for _, d := range m {
		assert.Empty(t, d)
	}
}

func TestLoad_Demo(t *testing.T) {
	m, err := Load(Options{Format: Demo})
	require.NoError(t, err)
	for _, dt := range hotasmap.Devices() {
		d := m[dt.Name]
		require.Len(t, d, len(dt.Controls), dt.Name)
		for _, c := range dt.Controls {
			assert.Equal(t, []string{c.Name}, d[c.Name])
		}
	}
}

func TestLoad_Debug(t *testing.T) {
	m, err := Load(Options{Format: Debug})
	require.NoError(t, err)
	lines := m[hotasmap.ThrottleName]["LeftThrottle"]
	require.Len(t, lines, 5)
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 0", lines[0])

	// Every control gets its own copy of the lines.
	lines[0] = "changed"
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 0", m[hotasmap.ThrottleName]["RightThrottle"][0])
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 0", debugLines[0])
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
    "thrustmaster_warthog_joystick": {
        "S1_Trigger_FirstStage": ["Fire 1", "Fire 2"]
    }
}`), 0o600))

	m, err := Load(Options{Format: JSON, Input: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fire 1", "Fire 2"}, m[hotasmap.JoystickName]["S1_Trigger_FirstStage"])
	assert.Equal(t, []string{}, m[hotasmap.JoystickName]["S2_WeaponsRelease"])
	assert.Len(t, m[hotasmap.ThrottleName], len(hotasmap.Throttle.Controls))
	assert.Len(t, m[hotasmap.PedalsName], len(hotasmap.Pedals.Controls))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(Options{Format: JSON})
	assert.ErrorIs(t, err, ErrInputRequired)

	_, err = Load(Options{Format: Elite})
	assert.ErrorIs(t, err, ErrInputRequired)

	_, err = Load(Options{Format: "csv"})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(Options{Format: JSON, Input: filepath.Join(t.TempDir(), "missing.json")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"thrustmaster_warthog_joystick": [`), 0o600))
	_, err = Load(Options{Format: JSON, Input: path})
	assert.Error(t, err)
}
