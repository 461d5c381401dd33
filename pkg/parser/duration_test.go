package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/pkg/input"
)

func TestDurationParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "all units",
			line: "1d2h3m4s",
			want: 24*time.Hour + 2*time.Hour + 3*time.Minute + 4*time.Second,
		},
		{
			name: "single unit",
			line: "90s",
			want: 90 * time.Second,
		},
		{
			name: "hours and minutes",
			line: "2h30m",
			want: 2*time.Hour + 30*time.Minute,
		},
		{
			name:    "zero duration rejected",
			line:    "0d",
			wantErr: true,
		},
		{
			name:    "no valid groups",
			line:    "soon",
			wantErr: true,
		},
		{
			name:    "trailing garbage rejected",
			line:    "1dxx",
			wantErr: true,
		},
		{
			name:    "unknown unit rejected",
			line:    "3w",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDurationParser()
			in := input.New(tt.line)
			before := in.Position()

			v, err := p.Parse(testContext{}, in)
			if tt.wantErr {
				var durErr *DurationError
				require.ErrorAs(t, err, &durErr)
				assert.Equal(t, tt.line, durErr.Input)
				assert.Equal(t, before, in.Position())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.True(t, in.IsEmpty())
		})
	}
}

func TestDurationParser_Suggest(t *testing.T) {
	p := NewDurationParser()

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "empty input proposes digits",
			prefix: "",
			want:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		},
		{
			name:   "number proposes unit letters",
			prefix: "1",
			want:   []string{"1d", "1h", "1m", "1s"},
		},
		{
			name:   "used units are not repeated",
			prefix: "1d2",
			want:   []string{"1d2h", "1d2m", "1d2s"},
		},
		{
			name:   "after a unit the next group starts",
			prefix: "1d",
			want:   []string{"1d1", "1d2", "1d3", "1d4", "1d5", "1d6", "1d7", "1d8", "1d9"},
		},
		{
			name:   "all units used ends the suggestions",
			prefix: "1d2h3m4s",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Suggest(testContext{}, tt.prefix))
		})
	}
}
