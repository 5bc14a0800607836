package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain coded error": {
			err:      ErrNotFound,
			debug:    false,
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "not found",
		},
		"wrapped coded error": {
			err:      Wrap(Wrap(ErrNotFound, "inner"), "outer"),
			debug:    false,
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "outer: inner: not found",
		},
		"nil is success": {
			err:      nil,
			debug:    false,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"stdlib is hidden": {
			err:      fmt.Errorf("stdlib"),
			debug:    false,
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"stdlib is exposed in debug mode": {
			err:      fmt.Errorf("stdlib"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "stdlib",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIInfoDebugIncludesStackTrace(t *testing.T) {
	_, log := ABCIInfo(Wrap(ErrInput, "bad address"), true)
	if !strings.Contains(log, "abci_test.go") {
		t.Errorf("log does not contain this file stack trace: %s", log)
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic, false); ErrPanic.Is(err) {
		t.Error("reduct must not pass through panic error")
	}
	if err := Redact(ErrNotFound, false); !ErrNotFound.Is(err) {
		t.Error("reduct must pass through registered error")
	}
	if err := Redact(fmt.Errorf("stdlib"), false); err.Error() != internalABCILog {
		t.Errorf("unclassified error must be replaced: %v", err)
	}
	custom := fmt.Errorf("custom")
	if err := Redact(custom, true); err != custom {
		t.Error("debug mode must not redact")
	}
}
