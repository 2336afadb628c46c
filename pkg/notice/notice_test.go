package notice

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestErrorMessage(t *testing.T) {
	base := errors.Base("Could not set CSRF token")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "single",
			err:  errors.New("boom"),
			want: "boom",
		},
		{
			name: "message_and_cause",
			err:  errors.Errorf("Failed to update paste: %w", errors.New("Invalid edit code.")),
			want: "Failed to update paste: Invalid edit code.",
		},
		{
			name: "deeper_causes_dropped",
			err:  errors.Errorf("Failed to create paste: %w", errors.Errorf("Failed to fetch base cookies: %w", base)),
			want: "Failed to create paste: Failed to fetch base cookies",
		},
		{
			name: "silent_wrappers_skipped",
			err:  errors.WithStack(errors.Errorf("outer: %w", errors.WithDetails(base, "k", "v"))),
			want: "outer: Could not set CSRF token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err), "message should match")
		})
	}
}

func TestConfirmation(t *testing.T) {
	assert.Equal(t, "confirmed", Confirmed.String(), "confirmed should stringify")
	assert.Equal(t, "cancelled", Cancelled.String(), "cancelled should stringify")
}

func TestConsoleAutoConfirm(t *testing.T) {
	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	got, err := NewConsole(true).Confirm(ctx, "Delete paste?")
	require.NoError(t, err, "auto confirm should not prompt")
	assert.Equal(t, Confirmed, got, "auto confirm should confirm")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	got, err = NewConsole(true).Confirm(cancelled, "Delete paste?")
	require.Error(t, err, "cancelled context should fail")
	assert.Equal(t, Cancelled, got, "cancelled context should not confirm")
}
