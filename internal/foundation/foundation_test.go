package foundation

import (
	"errors"
	"strconv"
	"testing"
)

func TestResult(t *testing.T) {
	t.Run("Ok result", func(t *testing.T) {
		result := Ok[string, error]("lib.dart")

		if !result.IsOk() {
			t.Error("Expected result to be Ok")
		}

		if result.Unwrap() != "lib.dart" {
			t.Error("Expected unwrap to return 'lib.dart'")
		}
	})

	t.Run("Err result", func(t *testing.T) {
		testErr := errors.New("write error")
		result := Err[string, error](testErr)

		if result.IsOk() {
			t.Error("Expected result to not be Ok")
		}

		if !errors.Is(result.UnwrapErr(), testErr) {
			t.Error("Expected unwrap error to match test error")
		}

		value, err := result.ToTuple()
		if value != "" || !errors.Is(err, testErr) {
			t.Errorf("ToTuple() = (%q, %v)", value, err)
		}
	})

	t.Run("Map", func(t *testing.T) {
		mapped := Map(Ok[int, error](3), strconv.Itoa)
		if mapped.Unwrap() != "3" {
			t.Errorf("Map = %q, want %q", mapped.Unwrap(), "3")
		}

		failed := Map(Err[int, error](errors.New("zero")), strconv.Itoa)
		if failed.IsOk() {
			t.Error("Expected Map to pass the Err through")
		}
	})
}

func TestOption(t *testing.T) {
	missing := errors.New("missing")

	t.Run("Some converts into Ok", func(t *testing.T) {
		if r := OkOr(Some(7), missing); r.Unwrap() != 7 {
			t.Error("Expected Some to convert into Ok")
		}
	})

	t.Run("None converts into the supplied error", func(t *testing.T) {
		if r := OkOr(None[int](), missing); !errors.Is(r.UnwrapErr(), missing) {
			t.Error("Expected None to convert into the supplied error")
		}
	})
}

func TestNormalizer(t *testing.T) {
	normalizer := NewNormalizer(map[string]string{
		"regular":            "REGULAR",
		"recursive":          "RECURSIVE",
		"regular_subfolders": "REGULAR_SUBFOLDERS",
	}, "REGULAR")

	t.Run("Valid values", func(t *testing.T) {
		if normalizer.Normalize("Recursive") != "RECURSIVE" {
			t.Error("Expected 'Recursive' to normalize to 'RECURSIVE'")
		}

		if normalizer.Normalize(" regular-subfolders ") != "REGULAR_SUBFOLDERS" {
			t.Error("Expected dashes to be treated as underscores")
		}
	})

	t.Run("Invalid value", func(t *testing.T) {
		if normalizer.Normalize("flat") != "REGULAR" {
			t.Error("Expected 'flat' to return default 'REGULAR'")
		}
	})

	t.Run("With error", func(t *testing.T) {
		_, err := normalizer.NormalizeWithError("invalid")
		if err == nil {
			t.Fatal("Expected error for invalid value")
		}
		want := `invalid value "invalid" (expected one of: recursive, regular, regular_subfolders)`
		if err.Error() != want {
			t.Errorf("error = %q, want %q", err.Error(), want)
		}
	})
}
