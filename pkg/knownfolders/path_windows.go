//go:build windows

package knownfolders

import (
	"errors"
	"syscall"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

// HRESULTs documented for SHGetKnownFolderPath. E_FAIL means the folder
// is virtual; the two FACILITY_WIN32 codes mean no folder exists for
// the identifier on this system. Every other failure code classifies as
// ErrShell with the raw value preserved.
const (
	hrFail         = 0x80004005 // E_FAIL
	hrInvalidArg   = 0x80070057 // E_INVALIDARG
	hrFileNotFound = 0x80070002 // HRESULT_FROM_WIN32(ERROR_FILE_NOT_FOUND)
	hrPathNotFound = 0x80070003 // HRESULT_FROM_WIN32(ERROR_PATH_NOT_FOUND)
)

var errMalformedOutput = errors.New("output buffer is not valid UTF-16")

// x/sys/windows only exports the convenience wrapper KnownFolderPath,
// which frees the buffer and substitutes replacement characters itself.
// Owning the buffer lifecycle and the strict decode requires the raw
// call, so resolve it from shell32 directly.
var (
	modshell32               = windows.NewLazySystemDLL("shell32.dll")
	procSHGetKnownFolderPath = modshell32.NewProc("SHGetKnownFolderPath")
)

// shGetKnownFolderPath invokes the raw shell call. A non-zero HRESULT
// is returned as a syscall.Errno holding the full 32-bit value.
func shGetKnownFolderPath(rfid *windows.KNOWNFOLDERID, flags uint32, token windows.Token, path **uint16) error {
	r0, _, _ := syscall.SyscallN(procSHGetKnownFolderPath.Addr(),
		uintptr(unsafe.Pointer(rfid)), uintptr(flags), uintptr(token), uintptr(unsafe.Pointer(path)))
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

// Path resolves id to an absolute filesystem path for the current user,
// using default resolution semantics (no alias following, no token
// override). Every failure is returned as an *Error wrapping one of the
// package sentinels; the call performs no caching, retries or logging.
func Path(id FolderID) (string, error) {
	if !id.Valid() {
		return "", &Error{Folder: id, Err: ErrInvalidArg, Detail: errors.New("identifier out of range")}
	}

	var buf *uint16
	err := shGetKnownFolderPath(folderGUIDs[id], windows.KF_FLAG_DEFAULT, 0, &buf)
	// The shell allocates the buffer and documents that it must be
	// freed via CoTaskMemFree even when the call fails. Deferring the
	// release scopes the buffer's lifetime to this call on every exit
	// path. CoTaskMemFree ignores nil.
	defer windows.CoTaskMemFree(unsafe.Pointer(buf))

	if err != nil {
		return "", classify(id, err)
	}
	path, ok := decodeUTF16Ptr(buf)
	if !ok {
		return "", &Error{Folder: id, Err: ErrShell, Detail: errMalformedOutput}
	}
	return path, nil
}

// classify maps a failed SHGetKnownFolderPath result onto the error
// taxonomy. The shell reports HRESULTs as syscall.Errno values.
func classify(id FolderID, err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return &Error{Folder: id, Err: ErrShell, Detail: err}
	}
	code := uint32(errno)
	switch code {
	case hrFail:
		return &Error{Folder: id, Code: code, Err: ErrVirtual}
	case hrFileNotFound, hrPathNotFound:
		return &Error{Folder: id, Code: code, Err: ErrNotFound}
	case hrInvalidArg:
		return &Error{Folder: id, Code: code, Err: ErrInvalidArg, Detail: errno}
	default:
		return &Error{Folder: id, Code: code, Err: ErrShell, Detail: errno}
	}
}

// decodeUTF16Ptr converts the NUL-terminated UTF-16 buffer to a string.
// Unlike windows.UTF16PtrToString it rejects unpaired surrogates rather
// than silently substituting replacement characters.
func decodeUTF16Ptr(p *uint16) (string, bool) {
	if p == nil {
		return "", false
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; n++ {
		ptr = unsafe.Pointer(uintptr(ptr) + unsafe.Sizeof(*p))
	}
	units := unsafe.Slice(p, n)
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return "", false
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return "", false
		}
	}
	return string(utf16.Decode(units)), true
}
