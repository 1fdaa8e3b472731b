package model

import (
	"testing"
	"time"
)

func TestSnackbarResult_ShouldConfirm(t *testing.T) {
	tests := []struct {
		result   SnackbarResult
		expected bool
	}{
		{SnackbarTimedOut, false},
		{SnackbarDismissed, true},
		{SnackbarActionPerformed, true},
	}

	for _, test := range tests {
		if result := test.result.ShouldConfirm(); result != test.expected {
			t.Errorf("SnackbarResult(%s).ShouldConfirm() = %v, expected %v", test.result, result, test.expected)
		}
	}
}

func TestSnackbarResult_String(t *testing.T) {
	tests := []struct {
		result   SnackbarResult
		expected string
	}{
		{SnackbarTimedOut, "TimedOut"},
		{SnackbarDismissed, "Dismissed"},
		{SnackbarActionPerformed, "ActionPerformed"},
		{SnackbarResult(9), "Unknown"},
	}

	for _, test := range tests {
		if result := test.result.String(); result != test.expected {
			t.Errorf("SnackbarResult.String() = %s, expected %s", result, test.expected)
		}
	}
}

func TestSnackbarDuration_Timeout(t *testing.T) {
	tests := []struct {
		duration SnackbarDuration
		timeout  time.Duration
		expires  bool
	}{
		{SnackbarShort, 4 * time.Second, true},
		{SnackbarLong, 10 * time.Second, true},
		{SnackbarIndefinite, 0, false},
		{SnackbarDuration(""), 4 * time.Second, true},
	}

	for _, test := range tests {
		timeout, expires := test.duration.Timeout()
		if timeout != test.timeout || expires != test.expires {
			t.Errorf("SnackbarDuration(%q).Timeout() = (%v, %v), expected (%v, %v)",
				test.duration, timeout, expires, test.timeout, test.expires)
		}
	}
}

func TestParseSnackbarDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected SnackbarDuration
	}{
		{"short", SnackbarShort},
		{"Long", SnackbarLong},
		{" indefinite ", SnackbarIndefinite},
		{"", SnackbarShort},
		{"forever", SnackbarShort},
	}

	for _, test := range tests {
		if result := ParseSnackbarDuration(test.input); result != test.expected {
			t.Errorf("ParseSnackbarDuration(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}
