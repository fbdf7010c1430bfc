//go:build windows

package knownfolders

import (
	"errors"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		code     uint32
		sentinel error
		detail   bool
	}{
		{"e_fail is virtual", hrFail, ErrVirtual, false},
		{"file not found", hrFileNotFound, ErrNotFound, false},
		{"path not found", hrPathNotFound, ErrNotFound, false},
		{"e_invalidarg", hrInvalidArg, ErrInvalidArg, true},
		{"access denied falls through", 0x80070005, ErrShell, true},
		{"e_notimpl falls through", 0x80004001, ErrShell, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := classify(Desktop, syscall.Errno(tc.code))

			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("expected %v, got %v", tc.sentinel, err)
			}

			var resolveErr *Error
			if !errors.As(err, &resolveErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if resolveErr.Folder != Desktop {
				t.Errorf("expected folder Desktop, got %v", resolveErr.Folder)
			}
			if resolveErr.Code != tc.code {
				t.Errorf("expected code 0x%08X, got 0x%08X", tc.code, resolveErr.Code)
			}
			if tc.detail && resolveErr.Detail == nil {
				t.Error("expected OS detail to be preserved")
			}
			if !tc.detail && resolveErr.Detail != nil {
				t.Errorf("expected no OS detail, got %v", resolveErr.Detail)
			}
		})
	}
}

func TestClassifyNonErrno(t *testing.T) {
	cause := errors.New("proc not found")
	err := classify(Desktop, cause)

	if !errors.Is(err, ErrShell) {
		t.Fatalf("expected ErrShell, got %v", err)
	}
	var resolveErr *Error
	if !errors.As(err, &resolveErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if resolveErr.Code != 0 {
		t.Errorf("expected zero HRESULT, got 0x%08X", resolveErr.Code)
	}
	if resolveErr.Detail != cause {
		t.Errorf("expected detail %v, got %v", cause, resolveErr.Detail)
	}
}

func TestDecodeUTF16Ptr(t *testing.T) {
	testCases := []struct {
		name     string
		units    []uint16
		expected string
		ok       bool
	}{
		{"plain path", []uint16{'C', ':', '\\', 'U', 's', 'e', 'r', 's', 0}, `C:\Users`, true},
		{"empty", []uint16{0}, "", true},
		{"surrogate pair", []uint16{0xD83D, 0xDCC1, 0}, "\U0001F4C1", true},
		{"lone high surrogate", []uint16{'a', 0xD800, 0}, "", false},
		{"high surrogate before bmp char", []uint16{'a', 0xD800, 'b', 0}, "", false},
		{"lone low surrogate", []uint16{0xDC00, 'a', 0}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := decodeUTF16Ptr(&tc.units[0])

			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got ok=%v (value %q)", tc.ok, ok, got)
			}
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestDecodeUTF16PtrNil(t *testing.T) {
	if _, ok := decodeUTF16Ptr(nil); ok {
		t.Error("expected nil buffer to be rejected")
	}
}
