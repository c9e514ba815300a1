package util
import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data next to filename and renames it into place,
// so filename either keeps its old content or gets all of data.
func WriteFileAtomic( filename string, data []byte, perm os.FileMode ) error {
	f, err := os.CreateTemp( filepath.Dir( filename ), ".tmpfile-" )
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err = f.Write( data ); err != nil {
		f.Close()
		os.Remove( tmp )
		return err
	}
	if err = f.Close(); err != nil {
		os.Remove( tmp )
		return err
	}
	if err = os.Chmod( tmp, perm ); err != nil {
		os.Remove( tmp )
		return err
	}
	if err = os.Rename( tmp, filename ); err != nil {
		os.Remove( tmp )
		return err
	}
	return nil
}
