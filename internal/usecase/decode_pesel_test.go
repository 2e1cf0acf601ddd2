package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/pesel/internal/domain"
)

func TestDecodePESEL_Valid(t *testing.T) {
	uc := NewDecodePESEL()

	res, err := uc.Execute(context.Background(), "92063012345")
	require.NoError(t, err)
	assert.Equal(t, domain.SexFemale, res.Sex)
	assert.Equal(t, "1992-06-30", res.DateOfBirth)

	res, err = uc.Execute(context.Background(), "02242105936")
	require.NoError(t, err)
	assert.Equal(t, domain.SexMale, res.Sex)
	assert.Equal(t, "2002-04-21", res.DateOfBirth)
}

func TestDecodePESEL_ReturnsDomainErrorUnchanged(t *testing.T) {
	uc := NewDecodePESEL()

	_, err := uc.Execute(context.Background(), "92063191345")
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, domain.KindInvalidDay, ve.Kind)
	assert.Equal(t, "Niepoprawny dzien w miesiacu", err.Error())
}

func TestDecodePESEL_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before Execute

	_, err := NewDecodePESEL().Execute(ctx, "92063012345")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDecodePESEL_LogsMaskedIdentifier(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	uc := NewDecodePESEL(WithLogger(log))
	_, err := uc.Execute(context.Background(), "92063012345")
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), "92003212345")
	require.Error(t, err)

	out := buf.String()
	assert.NotContains(t, out, "92063012345")
	assert.NotContains(t, out, "92003212345")
	assert.Contains(t, out, "92*********")

	entries := decodeLines(t, out)
	var failed map[string]any
	for _, e := range entries {
		if e["msg"] == "pesel.decode.failed" {
			failed = e
		}
	}
	require.NotNil(t, failed, "expected a pesel.decode.failed entry")
	assert.Equal(t, "invalid_month", failed["kind"])
}

func TestDecodePESEL_MaskingDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	uc := NewDecodePESEL(WithLogger(log), WithMasking(false))
	_, err := uc.Execute(context.Background(), "92063012345")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "92063012345")
}

func TestDecodePESEL_ConcurrentUse(t *testing.T) {
	uc := NewDecodePESEL()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := uc.Execute(context.Background(), "02242105936")
			assert.NoError(t, err)
			assert.Equal(t, "2002-04-21", res.DateOfBirth)
		}()
	}
	wg.Wait()
}

func TestMask(t *testing.T) {
	assert.Equal(t, "92*********", Mask("92063012345"))
	assert.Equal(t, "12****", Mask("123abc"))
	assert.Equal(t, "**", Mask("92"))
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "żó*", Mask("żół"))
}

func decodeLines(t *testing.T, s string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}
