package errs

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	parseErr := fmt.Errorf("load: %w", &ParseError{Location: "movies.json", Err: errors.New("unexpected end of JSON input")})
	accessErr := fmt.Errorf("save: %w", &AccessError{Op: "write", Location: "prefs.json", Err: os.ErrPermission})
	validationErr := &ValidationError{Field: "minimum rating", Input: "abc"}

	if !IsParse(parseErr) || IsAccess(parseErr) || IsValidation(parseErr) {
		t.Errorf("parse error misclassified: %v", parseErr)
	}
	if !IsAccess(accessErr) || IsParse(accessErr) {
		t.Errorf("access error misclassified: %v", accessErr)
	}
	if !errors.Is(accessErr, os.ErrPermission) {
		t.Errorf("access error should unwrap to os.ErrPermission")
	}
	if !IsValidation(validationErr) {
		t.Errorf("validation error misclassified: %v", validationErr)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ParseError{Location: "a.json", Err: errors.New("bad")}, "failed to parse a.json: bad"},
		{&AccessError{Op: "read", Location: "a.json", Err: errors.New("denied")}, "failed to read a.json: denied"},
		{&ValidationError{Field: "start year", Input: "x"}, `start year: "x" is not valid`},
		{&ValidationError{Field: "end year", Input: "y", Err: errors.New("not a number")}, `end year: "y" is not valid: not a number`},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
