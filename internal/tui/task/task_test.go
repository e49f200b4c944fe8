package task

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_RecordsResult(t *testing.T) {
	t.Parallel()

	m := New(context.Background(), "uploading", func(context.Context) (string, error) {
		return "https://example.test/a.png", nil
	})
	require.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "uploading")

	msg := m.work()
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	final := next.(Model)
	result, err := final.Result()
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/a.png", result)
	assert.Empty(t, final.View())
}

func TestModel_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	m := New(context.Background(), "uploading", func(context.Context) (string, error) {
		return "", boom
	})

	next, _ := m.Update(m.work())
	_, err := next.(Model).Result()
	assert.ErrorIs(t, err, boom)
}

func TestModel_CtrlCCancelsWork(t *testing.T) {
	t.Parallel()

	m := New(context.Background(), "uploading", func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, err := next.(Model).Result()
	assert.ErrorIs(t, err, context.Canceled)

	done, ok := next.(Model).work().(doneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, done.err, context.Canceled)
}
