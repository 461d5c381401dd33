package parser

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/pkg/input"
)

func TestBooleanParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		liberal bool
		line    string
		want    bool
		wantErr bool
	}{
		{name: "strict true", line: "true", want: true},
		{name: "strict false", line: "false", want: false},
		{name: "strict case insensitive", line: "TRUE", want: true},
		{name: "strict rejects yes", line: "yes", wantErr: true},
		{name: "strict rejects off", line: "off", wantErr: true},
		{name: "strict rejects garbage", line: "maybe", wantErr: true},
		{name: "liberal yes", liberal: true, line: "yes", want: true},
		{name: "liberal on", liberal: true, line: "on", want: true},
		{name: "liberal no", liberal: true, line: "no", want: false},
		{name: "liberal off", liberal: true, line: "OFF", want: false},
		{name: "liberal still rejects garbage", liberal: true, line: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &BooleanParser{Liberal: tt.liberal}
			in := input.New(tt.line)
			before := in.Position()

			v, err := p.Parse(testContext{}, in)
			if tt.wantErr {
				var boolErr *BooleanError
				require.ErrorAs(t, err, &boolErr)
				assert.Equal(t, tt.line, boolErr.Input)
				assert.Equal(t, before, in.Position())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.True(t, in.IsEmpty())
		})
	}
}

func TestBooleanParser_RoundTrip(t *testing.T) {
	p := NewBooleanParser()
	for _, want := range []bool{true, false} {
		v, err := p.Parse(testContext{}, input.New(strconv.FormatBool(want)))
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestBooleanParser_Suggest(t *testing.T) {
	tests := []struct {
		name    string
		liberal bool
		prefix  string
		want    []string
	}{
		{
			name:   "strict empty prefix",
			prefix: "",
			want:   []string{"true", "false"},
		},
		{
			name:   "strict t prefix",
			prefix: "t",
			want:   []string{"true"},
		},
		{
			name:    "liberal empty prefix",
			liberal: true,
			prefix:  "",
			want:    []string{"true", "false", "yes", "no", "on", "off"},
		},
		{
			name:    "liberal o prefix",
			liberal: true,
			prefix:  "o",
			want:    []string{"on", "off"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &BooleanParser{Liberal: tt.liberal}
			assert.Equal(t, tt.want, p.Suggest(testContext{}, tt.prefix))
		})
	}
}
