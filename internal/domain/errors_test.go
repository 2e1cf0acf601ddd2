package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &ValidationError{Kind: KindDateFormat, Err: root}

	assert.ErrorIs(t, err, root)

	var got *ValidationError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, KindDateFormat, got.Kind)
	assert.Equal(t, "Niepoprawny format daty: root", err.Error())
}

func TestValidationErrorMessageHasNoCause(t *testing.T) {
	err := newValidationError(KindInvalidMonth)
	assert.Equal(t, "Niepoprawny miesiac", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestIsKindForOpError(t *testing.T) {
	err := &OpError{
		Op:   "configfinder.loadconfig",
		Kind: KindInvalidConfig,
		Path: "/tmp/pesel.yaml",
		Err:  ErrInvalidConfig,
	}

	assert.True(t, IsKind(err, KindInvalidConfig))
	assert.False(t, IsKind(err, KindNotFound))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "path=/tmp/pesel.yaml")
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("decode: %w", newValidationError(KindInvalidDay))
	assert.True(t, IsKind(err, KindInvalidDay))
	assert.Equal(t, KindInvalidDay, KindOf(err))
}

func TestKindOfUnknown(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, ""))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Pesel jest pusty!", Message(KindEmptyInput))
	assert.Equal(t, "", Message(KindNotFound))
}
