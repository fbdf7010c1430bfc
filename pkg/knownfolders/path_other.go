//go:build !windows

package knownfolders

// Path is only implemented on Windows. On every other platform it
// returns an *Error wrapping ErrUnsupported, keeping the package's API
// and the CLI buildable cross-platform.
func Path(id FolderID) (string, error) {
	return "", &Error{Folder: id, Err: ErrUnsupported}
}
