package util
import (
	"os"
	"testing"
	"path/filepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic( t *testing.T ) {
	dir := t.TempDir()
	filename := filepath.Join( dir, "out.ppm" )

	require.NoError(t, os.WriteFile(filename, []byte("old content"), 0600))
	require.NoError(t, WriteFileAtomic(filename, []byte("new"), 0640))

	data, err := os.ReadFile( filename )
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat( filename )
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	// no temporary files are left behind
	entries, err := os.ReadDir( dir )
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomicMissingDir( t *testing.T ) {
	filename := filepath.Join( t.TempDir(), "missing", "out.ppm" )
	assert.Error(t, WriteFileAtomic(filename, []byte("x"), 0644))
	_, err := os.Stat( filename )
	assert.True(t, os.IsNotExist(err))
}
