package common

import (
	"errors"
	"testing"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("hunter2")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestValidation_WrapsBothWays(t *testing.T) {
	err := Validation(ErrorEmailTaken)
	if !errors.Is(err, ErrorValidation) {
		t.Fatalf("expected match on the class, got %v", err)
	}
	if !errors.Is(err, ErrorEmailTaken) {
		t.Fatalf("expected match on the cause, got %v", err)
	}
	if errors.Is(err, ErrorUsernameTaken) {
		t.Fatalf("unexpected match on an unrelated cause")
	}
}
