// ./internal/logging/logging_test.go
package logging

/*
Package logging provides tests for level and format selection.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code.
*/

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{" error ", logrus.ErrorLevel},
		{"fatal", logrus.FatalLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.NoError(t, SetLevel(tt.in))
			assert.Equal(t, tt.want, Log.GetLevel())
		})
	}

	Log.SetLevel(logrus.WarnLevel)
	assert.Error(t, SetLevel("verbose"))
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel(), "level unchanged on error")
}

func TestSetFormat(t *testing.T) {
	defer Log.SetFormatter(&logrus.TextFormatter{})

	require.NoError(t, SetFormat("json"))
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)
	require.NoError(t, SetFormat("text"))
	assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
	assert.Error(t, SetFormat("xml"))
}
