package alphabet

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"mygrep/internal/syntax"
)

func TestNewKeepsOrder(t *testing.T) {
	s, err := FromString("cab")
	assert.NoError(t, err)
	assert.Equal(t, []rune("cab"), s.Alphabet())
	assert.True(t, s.Contains('a'))
	assert.False(t, s.Contains('z'))
	assert.Equal(t, "cab", s.String())
}

func TestNewRejects(t *testing.T) {
	_, err := FromString("")
	assert.IsError(t, err, ErrEmpty)
	_, err = FromString("aba")
	assert.IsError(t, err, ErrDuplicate)
}

func TestAlphabetReturnsCopy(t *testing.T) {
	s, err := FromString("xy")
	assert.NoError(t, err)
	a := s.Alphabet()
	a[0] = 'q'
	assert.Equal(t, []rune("xy"), s.Alphabet())
}

func TestPresets(t *testing.T) {
	ascii := ASCII()
	assert.Equal(t, 95, ascii.Len())
	assert.Equal(t, ' ', ascii.Alphabet()[0])
	assert.Equal(t, '~', ascii.Alphabet()[94])

	lower, err := Preset("lower")
	assert.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", lower.String())

	alnum, err := Preset("alnum")
	assert.NoError(t, err)
	assert.Equal(t, 62, alnum.Len())

	_, err = Preset("greek")
	assert.IsError(t, err, ErrUnknownPreset)
	assert.Equal(t, []string{"alnum", "ascii", "lower"}, PresetNames())
}

func TestSetDrivesTranslator(t *testing.T) {
	s, err := FromString("01")
	assert.NoError(t, err)
	n, err := syntax.Parse(".?", s)
	assert.NoError(t, err)
	want := syntax.NewUnion(syntax.Empty{}, syntax.NewCharGroup('0', '1'))
	assert.True(t, syntax.Equal(want, n))
}
