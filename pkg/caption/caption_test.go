package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Render(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		vars Variables
		want string
	}{
		{
			name: "number failure with bounds",
			key:  NumberParseFailure,
			vars: Variables{"input": "abc", "type": "int32", "min": "0", "max": "10"},
			want: "'abc' is not a valid int32 in the range 0 to 10",
		},
		{
			name: "enum failure lists acceptable values",
			key:  EnumParseFailure,
			vars: Variables{"input": "purple", "acceptable": "red, green, blue"},
			want: "'purple' is not one of the following: red, green, blue",
		},
		{
			name: "missing variable leaves placeholder",
			key:  FlagUnknown,
			vars: nil,
			want: "Unknown flag '<flag>'",
		},
		{
			name: "unregistered key renders as itself",
			key:  Key("does.not.exist"),
			vars: Variables{"input": "x"},
			want: "does.not.exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			assert.Equal(t, tt.want, r.Render(tt.key, tt.vars))
		})
	}
}

func TestRegistry_RegisterOverridesDefault(t *testing.T) {
	r := NewRegistry()
	r.Register(NoPermission, "nope, <sender>")

	got := r.Render(NoPermission, Variables{"sender": "alice"})
	assert.Equal(t, "nope, alice", got)
}
