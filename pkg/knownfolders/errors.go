package knownfolders

import (
	"errors"
	"fmt"
)

// Classification sentinels. Every error returned by Path wraps exactly
// one of these, so callers can switch on errors.Is.
var (
	// ErrVirtual reports an identifier that names a purely logical
	// folder with no filesystem path (e.g. ComputerFolder).
	ErrVirtual = errors.New("virtual folders have no filesystem path")

	// ErrNotFound reports that no folder exists for the identifier on
	// this system or configuration.
	ErrNotFound = errors.New("known folder not found on this system")

	// ErrInvalidArg reports that the shell rejected the identifier,
	// typically because the running Windows version predates it.
	ErrInvalidArg = errors.New("known folder not recognized by the shell")

	// ErrShell covers every other shell failure, including malformed
	// output; the raw HRESULT is preserved on the Error.
	ErrShell = errors.New("shell error")

	// ErrUnsupported is returned by Path on non-Windows platforms.
	ErrUnsupported = errors.New("known folders are only available on windows")
)

// Error describes a failed known folder resolution.
type Error struct {
	Folder FolderID
	Code   uint32 // raw HRESULT from the shell, zero when none was returned
	Err    error  // one of the classification sentinels
	Detail error  // underlying OS error for ErrInvalidArg and ErrShell, nil otherwise
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("resolve known folder %s: %v", e.Folder, e.Err)
	if e.Detail != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Detail)
	}
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (HRESULT 0x%08X)", msg, e.Code)
	}
	return msg
}

// Unwrap returns the classification sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}
