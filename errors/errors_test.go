package errors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorsIs(t *testing.T) {
	cases := map[string]struct {
		kind      *Error
		err       error
		wantMatch bool
	}{
		"instance of the same root error": {
			kind:      ErrNotFound,
			err:       ErrNotFound,
			wantMatch: true,
		},
		"wrapped root error": {
			kind:      ErrNotFound,
			err:       Wrap(ErrNotFound, "gone"),
			wantMatch: true,
		},
		"deeply wrapped root error": {
			kind:      ErrNotFound,
			err:       Wrap(Wrap(ErrNotFound, "gone"), "whoops"),
			wantMatch: true,
		},
		"nil error does not match": {
			kind:      ErrNotFound,
			err:       nil,
			wantMatch: false,
		},
		"different root error": {
			kind:      ErrNotFound,
			err:       Wrap(ErrState, "gone"),
			wantMatch: false,
		},
		"stdlib error": {
			kind:      ErrNotFound,
			err:       fmt.Errorf("stdlib"),
			wantMatch: false,
		},
		"pkg/errors error": {
			kind:      ErrNotFound,
			err:       errors.New("pkg"),
			wantMatch: false,
		},
		"nil kind matches nil error": {
			kind:      nil,
			err:       nil,
			wantMatch: true,
		},
		"appended errors match any member kind": {
			kind:      ErrState,
			err:       Append(Wrap(ErrAmount, "too much"), Wrap(ErrState, "resolved")),
			wantMatch: true,
		},
		"appended errors without the kind": {
			kind:      ErrNotFound,
			err:       Append(Wrap(ErrAmount, "too much"), Wrap(ErrState, "resolved")),
			wantMatch: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantMatch {
				t.Fatalf("unexpected match result: %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "ignored"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
	if err := Wrapf(nil, "ignored %d", 42); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrappedErrorCode(t *testing.T) {
	err := Wrap(Wrap(ErrUnauthorized, "no signature"), "create proposal")
	if got, want := abciCode(err), ErrUnauthorized.ABCICode(); got != want {
		t.Fatalf("want %d code, got %d", want, got)
	}
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	inner := Wrap(ErrInput, "inner")
	if stackTrace(inner) == nil {
		t.Fatal("wrapping a root error must attach a stack trace")
	}
	outer := Wrap(inner, "outer")
	if stackTrace(outer) == nil {
		t.Fatal("stack trace information must be preserved when wrapping")
	}
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "duplicate of unauthorized")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("kaboom")
	}()

	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("appending only nil errors must return nil, got %+v", err)
	}

	single := Wrap(ErrAmount, "negative")
	if err := Append(nil, single); err != single {
		t.Fatalf("appending a single error must return it unchanged, got %+v", err)
	}

	bundle := Append(Wrap(ErrAmount, "negative"), Wrap(ErrEmpty, "missing owner"))
	if !ErrAmount.Is(bundle) || !ErrEmpty.Is(bundle) {
		t.Fatalf("bundle must match all member kinds: %+v", bundle)
	}
}
