package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/types"
)

func TestMethodRefs(t *testing.T) {
	owner := types.Direct("com.acme.Util")
	static := NewMethod(types.Public|types.Static, owner, "parse")
	instance := NewMethod(types.Public, owner, "apply")
	v := NewVar(types.None, owner, "util", nil)

	t.Run("static method", func(t *testing.T) {
		ref, err := MethodRefStatic(static)
		require.NoError(t, err)
		assert.True(t, ref.IsStatic())
		assert.Equal(t, "com.acme.Util::parse", render(t, ref))
	})

	t.Run("instance method", func(t *testing.T) {
		ref, err := MethodRefInstance(v, instance)
		require.NoError(t, err)
		assert.False(t, ref.IsStatic())
		assert.Equal(t, owner, ref.Type())
		assert.Equal(t, "util::apply", render(t, ref))
	})

	t.Run("by name on type", func(t *testing.T) {
		ref, err := MethodRefType(owner, "valueOf")
		require.NoError(t, err)
		assert.Equal(t, "com.acme.Util::valueOf", render(t, ref))
	})

	t.Run("constructor", func(t *testing.T) {
		ref, err := MethodRefConstructor(owner)
		require.NoError(t, err)
		assert.Equal(t, "new", ref.MethodName())
		assert.Equal(t, "com.acme.Util::new", render(t, ref))
	})

	t.Run("by name on variable", func(t *testing.T) {
		ref, err := MethodRefVar(v, "close")
		require.NoError(t, err)
		assert.Equal(t, "util::close", render(t, ref))
	})
}

func TestMethodRefMismatches(t *testing.T) {
	owner := types.Direct("com.acme.Util")
	static := NewMethod(types.Static, owner, "parse")
	instance := NewMethod(types.None, owner, "apply")
	v := NewVar(types.None, owner, "util", nil)

	tests := []struct {
		name string
		make func() (*MethodRef, error)
	}{
		{"instance method without receiver", func() (*MethodRef, error) { return MethodRefStatic(instance) }},
		{"static method with receiver", func() (*MethodRef, error) { return MethodRefInstance(v, static) }},
		{"nil method", func() (*MethodRef, error) { return MethodRefStatic(nil) }},
		{"empty name on type", func() (*MethodRef, error) { return MethodRefType(owner, "") }},
		{"empty name on variable", func() (*MethodRef, error) { return MethodRefVar(v, "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := tt.make()
			require.Error(t, err)
			assert.Nil(t, ref)
			assert.True(t, errors.IsIllegalArgument(err))
		})
	}
}
