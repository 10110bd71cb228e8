package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestKindProjection(t *testing.T) {
	assert.Equal(t, KindNull, Null().Kind())
	assert.Equal(t, KindNull, Value{}.Kind())
	assert.Equal(t, KindNumber, Number(-7).Kind())
	assert.Equal(t, KindBoolean, Boolean(false).Kind())
	assert.True(t, Value{}.IsNull())
}

func TestAccessors(t *testing.T) {
	assert.Equal(t, int64(9223372036854775807), Number(9223372036854775807).AsNumber())
	assert.True(t, Boolean(true).AsBoolean())
	assert.False(t, Boolean(false).AsBoolean())
}

// Неверный аксессор считается ошибкой программиста, а не пользователя.
func TestAccessorPreconditions(t *testing.T) {
	assert.PanicsWithValue(t, "not a number: true", func() { Boolean(true).AsNumber() })
	assert.PanicsWithValue(t, "not a number: <null>", func() { Null().AsNumber() })
	assert.PanicsWithValue(t, "not a boolean: 12", func() { Number(12).AsBoolean() })
	assert.PanicsWithValue(t, "not a boolean: <null>", func() { Null().AsBoolean() })
}

func TestString(t *testing.T) {
	assert.Equal(t, "<null>", Null().String())
	assert.Equal(t, "-42", Number(-42).String())
	assert.Equal(t, "false", Boolean(false).String())
	assert.Equal(t, "number", KindNumber.String())
}

func TestEqual(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Number(0).Equal(Boolean(false)))
	assert.False(t, Null().Equal(Number(0)))
	assert.True(t, Null().Equal(Value{}))
}

func TestMsgpackCodec(t *testing.T) {
	for _, v := range []Value{Null(), Number(0), Number(-9223372036854775808), Boolean(true)} {
		data, err := msgpack.Marshal(v)
		require.NoError(t, err)

		var got Value
		require.NoError(t, msgpack.Unmarshal(data, &got))
		assert.True(t, v.Equal(got), "roundtrip of %s produced %s", v, got)
	}
}

func TestMsgpackRejectsUnknownKind(t *testing.T) {
	data, err := msgpack.Marshal([]any{uint8(9), nil})
	require.NoError(t, err)

	var got Value
	assert.Error(t, msgpack.Unmarshal(data, &got))
}
