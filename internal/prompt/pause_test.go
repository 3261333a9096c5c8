package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	err      error
	prompts  []string
	response string
}

func (f *fakePrompter) Prompt(p string) (string, error) {
	f.prompts = append(f.prompts, p)
	return f.response, f.err
}

func (*fakePrompter) Close() error { return nil }

func TestPauseWithPrompterWaitsForEnter(t *testing.T) {
	t.Parallel()

	fake := &fakePrompter{}
	err := PauseWithPrompter(fake)
	require.NoError(t, err)
	require.Len(t, fake.prompts, 1)
	require.Contains(t, fake.prompts[0], "Press Enter")
}

func TestPauseWithPrompterTreatsEOFAsRelease(t *testing.T) {
	t.Parallel()

	fake := &fakePrompter{err: io.EOF}
	err := PauseWithPrompter(fake)
	require.NoError(t, err)
}

func TestPauseWithPrompterPropagatesOtherErrors(t *testing.T) {
	t.Parallel()

	fake := &fakePrompter{err: errors.New("terminal gone")}
	err := PauseWithPrompter(fake)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pause")
}
