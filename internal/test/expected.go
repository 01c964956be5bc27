// Package test holds the assertions shared by the package tests.
package test

import (
	"reflect"
	"testing"
)

// outcome reports whether v counts as a success. A true bool and a nil
// error succeed. known is false for any other type.
func outcome(v any) (success bool, known bool) {
	switch v := v.(type) {
	case nil:
		return true, true
	case bool:
		return v, true
	case error:
		return v == nil, true
	}
	return false, false
}

// ExpectSuccess fails the test unless v is true or a nil error.
func ExpectSuccess(t testing.TB, v any) bool {
	t.Helper()

	success, known := outcome(v)
	if !known {
		t.Fatalf("cannot judge success of a %T", v)
	}
	if !success {
		t.Errorf("want success, got %v", v)
	}
	return success
}

// ExpectFailure fails the test unless v is false or a non-nil error.
func ExpectFailure(t testing.TB, v any) bool {
	t.Helper()

	success, known := outcome(v)
	if !known {
		t.Fatalf("cannot judge failure of a %T", v)
	}
	if success {
		t.Errorf("want failure, got %v", v)
	}
	return !success
}

// ExpectEquality fails the test unless got and want are deeply equal.
func ExpectEquality(t testing.TB, got any, want any) bool {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
		return false
	}
	return true
}
