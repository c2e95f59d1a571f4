package sentinel

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  Error
		want string
	}{
		"simple message": {err: Error("engine init failed"), want: "engine init failed"},
		"empty message":  {err: Error(""), want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestError_ErrorsIs(t *testing.T) {
	t.Parallel()

	const missing = Error("missing platform data root")

	if !errors.Is(fmt.Errorf("prepare: %w", missing), missing) {
		t.Error("errors.Is should match sentinel error through wrapping")
	}
	if errors.Is(missing, errors.New("missing platform data root")) {
		t.Error("errors.Is should not match errors.New with the same text")
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	const (
		class    = Error("configuration error")
		other    = Error("initialization error")
		specific = Error("missing platform data root")
	)

	err := Classify(class, specific)
	if !errors.Is(err, class) {
		t.Errorf("errors.Is(%v, class) = false, want true", err)
	}
	if !errors.Is(err, specific) {
		t.Errorf("errors.Is(%v, specific) = false, want true", err)
	}
	if errors.Is(err, other) {
		t.Errorf("errors.Is(%v, other) = true, want false", err)
	}
	if want := "configuration error: missing platform data root"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestClassifyNil(t *testing.T) {
	t.Parallel()

	if err := Classify(Error("class"), nil); err != nil {
		t.Errorf("Classify(class, nil) = %v, want nil", err)
	}
}
