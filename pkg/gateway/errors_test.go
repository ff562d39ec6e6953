package gateway

import (
	"errors"
	"strings"
	"testing"
)

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := transport("edit-asset", cause)

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatal("not a TransportError")
	}
	if te.Op != "edit-asset" {
		t.Errorf("op = %q", te.Op)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestParseErrorCarriesRaw(t *testing.T) {
	err := &ParseError{Op: "slides", Raw: `{"broken":`, Err: errors.New("unexpected EOF")}
	if !strings.Contains(err.Error(), "slides") {
		t.Errorf("message missing op: %q", err.Error())
	}
	var pe *ParseError
	if !errors.As(error(err), &pe) || pe.Raw != `{"broken":` {
		t.Error("raw payload lost")
	}
}
