package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultivarhq/cultivar/sdk/validation"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "calendar date",
			input: "2024-03-05",
			want:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "date with time-of-day suffix",
			input: "2024-03-05T12:00:00",
			want:  time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: "2024-03-05T12:00:00Z",
			want:  time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ParseFlexibleDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseFlexibleDateInvalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "05/03/2024"} {
		_, err := validation.ParseFlexibleDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatTimePtrToString(t *testing.T) {
	assert.Empty(t, validation.FormatTimePtrToString(nil))

	ts := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05T12:00:00Z", validation.FormatTimePtrToString(&ts))
}

func TestStringPointerHelpers(t *testing.T) {
	assert.NotNil(t, validation.StringPtr(""))
	assert.Nil(t, validation.StringPtrIfNotEmpty(""))

	p := validation.StringPtrIfNotEmpty("x")
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)

	assert.Equal(t, "", validation.GetStringOrEmpty(nil))
	assert.Equal(t, "x", validation.GetStringOrEmpty(p))
	assert.Equal(t, "fallback", validation.GetStringOrDefault(nil, "fallback"))
	assert.Equal(t, "x", validation.GetStringOrDefault(p, "fallback"))
}
