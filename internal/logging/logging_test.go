package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewdump.log")
	require.NoError(t, Init("debug", path, false))
	require.Equal(t, logrus.DebugLevel, Get().GetLevel())

	Debugf("packed %d bytes", 12)
	WithView(stringer("bufview.ByteView[pos=0 lim=4 cap=4]")).Info("loaded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "packed 12 bytes")
	require.Contains(t, string(data), `view="bufview.ByteView[pos=0 lim=4 cap=4]"`)
}

func TestInitUnknownLevel(t *testing.T) {
	require.NoError(t, Init("chatty", "", false))
	require.Equal(t, logrus.InfoLevel, Get().GetLevel())
}

type stringer string

func (s stringer) String() string { return string(s) }
