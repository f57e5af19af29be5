package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(DecodeError, "cannot decode doc.json", nil)
	want := "[DECODE_ERROR] cannot decode doc.json"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := stderrors.New("unexpected EOF")
	wrapped := New(DecodeError, "cannot decode doc.json", cause)
	want = "[DECODE_ERROR] cannot decode doc.json: unexpected EOF"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("no such file")
	err := New(IOError, "cannot open doc.json", cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(StoreError, "boom", nil)); got != StoreError {
		t.Errorf("CodeOf() = %v, want STORE_ERROR", got)
	}
	if got := CodeOf(stderrors.New("plain")); got != InternalError {
		t.Errorf("CodeOf(plain) = %v, want INTERNAL_ERROR", got)
	}

	wrapped := New(IOError, "outer", New(DecodeError, "inner", nil))
	if got := CodeOf(wrapped); got != IOError {
		t.Errorf("CodeOf(wrapped) = %v, want the outermost code IO_ERROR", got)
	}
}
