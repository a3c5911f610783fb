package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Messages(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		kind Kind
		msg  string
	}{
		{name: "bad request", err: BadRequest("pair is too long"), kind: KindBadRequest, msg: "pair is too long"},
		{name: "not found", err: NotFound("BTCUSDT"), kind: KindNotFound, msg: "Prediction not found for pair: BTCUSDT"},
		{name: "storage", err: Storage(errors.New("conn refused")), kind: KindStorage, msg: "Database error"},
		{name: "config", err: Config("Invalid SERVER_PORT"), kind: KindConfig, msg: "Invalid SERVER_PORT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Kind != tc.kind {
				t.Fatalf("kind %v, want %v", tc.err.Kind, tc.kind)
			}
			if tc.err.Message != tc.msg {
				t.Fatalf("message %q, want %q", tc.err.Message, tc.msg)
			}
		})
	}
}

func TestStorage_WrapsCause(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := Storage(cause)

	// Full detail stays in Error() for logging, not in Message.
	if err.Error() != "Database error: driver: bad connection" {
		t.Fatalf("unexpected Error(): %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain")
	}
}

func TestKindOf(t *testing.T) {
	if k, ok := KindOf(NotFound("X")); !ok || k != KindNotFound {
		t.Fatalf("KindOf direct: k=%v ok=%v", k, ok)
	}

	wrapped := fmt.Errorf("handler: %w", Storage(errors.New("boom")))
	if k, ok := KindOf(wrapped); !ok || k != KindStorage {
		t.Fatalf("KindOf wrapped: k=%v ok=%v", k, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("plain error should have no kind")
	}
}
