package variable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-causalid/causalid/variable"
)

func TestNew_RejectsEmptyAndReservedNames(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", variable.ErrEmptyName},
		{"whitespace only", "   ", variable.ErrEmptyName},
		{"contains space", "X Y", variable.ErrInvalidName},
		{"contains bracket", "X[1]", variable.ErrInvalidName},
		{"contains comma", "X,Y", variable.ErrInvalidName},
		{"contains paren", "X(1)", variable.ErrInvalidName},
		{"contains slash", "X/Y", variable.ErrInvalidName},
		{"contains semicolon", "X;Y", variable.ErrInvalidName},
		{"contains star", "X*", variable.ErrInvalidName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := variable.New(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr))
		})
	}
}

func TestNew_AcceptsOrdinaryNames(t *testing.T) {
	v, err := variable.New("X1")
	require.NoError(t, err)
	assert.Equal(t, "X1", v.Name())
	assert.Equal(t, "X1", v.String())
	assert.False(t, v.Zero())
}

func TestMustNew_PanicsOnInvalidName(t *testing.T) {
	assert.Panics(t, func() { variable.MustNew("") })
	assert.NotPanics(t, func() { variable.MustNew("X") })
}

func TestVariable_Zero(t *testing.T) {
	var z variable.Variable
	assert.True(t, z.Zero())
	assert.False(t, variable.MustNew("X").Zero())
}

func TestVariable_Less(t *testing.T) {
	x, y := variable.MustNew("X"), variable.MustNew("Y")
	assert.True(t, x.Less(y))
	assert.False(t, y.Less(x))
	assert.False(t, x.Less(x))
}

func TestVariable_Equality(t *testing.T) {
	x1, err := variable.New("X")
	require.NoError(t, err)
	x2, err := variable.New("X")
	require.NoError(t, err)
	// Two Variables built from the same name are equal by value, since
	// Variable carries no identity beyond its name.
	assert.Equal(t, x1, x2)
}
