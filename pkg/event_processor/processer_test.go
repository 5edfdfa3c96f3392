package event_processor

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"lurk/user/event"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	ep := NewEventProcessor(&buf, true, nil)

	require.NoError(t, ep.Write(event.NewSyscallEntry(5, 0, "read", []string{"3", "0x10", "5"})))
	require.NoError(t, ep.Write(event.NewSyscallExit(5, 0, "read", 5)))

	// bytes.Buffer 不是终端 不会上色
	assert.Equal(t, "[5] read(3, 0x10, 5)\n[5]: read() = 5\n", buf.String())
	assert.Equal(t, uint64(2), ep.Count())
}

func TestWriteColor(t *testing.T) {
	var buf bytes.Buffer
	ep := NewEventProcessor(&buf, false, nil)
	ep.SetColor(true)

	require.NoError(t, ep.Write(event.NewSyscallEntry(1, 39, "getpid", nil)))
	require.NoError(t, ep.Write(event.NewSyscallExit(1, 39, "getpid", 1)))
	require.NoError(t, ep.Write(&event.ExitEvent{Pid: 1}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, COLOR_GREEN+"[1] getpid()"+COLOR_RESET, lines[0])
	assert.Equal(t, COLOR_YELLOW+"[1]: getpid() = 1"+COLOR_RESET, lines[1])
	assert.Equal(t, COLOR_RED+"[1] +++ exited with 0 +++"+COLOR_RESET, lines[2])
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	ep := NewEventProcessor(failingWriter{}, false, nil)
	err := ep.Write(event.NewSyscallEntry(1, 39, "getpid", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, uint64(0), ep.Count())
}

type chunkRecorder struct {
	sync.Mutex
	chunks []string
}

func (this *chunkRecorder) Write(p []byte) (int, error) {
	this.Lock()
	defer this.Unlock()
	this.chunks = append(this.chunks, string(p))
	return len(p), nil
}

func TestWriteIsLineAtomic(t *testing.T) {
	rec := &chunkRecorder{}
	ep := NewEventProcessor(rec, false, nil)

	var wg sync.WaitGroup
	for pid := 1; pid <= 8; pid++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = ep.Write(event.NewSyscallEntry(pid, 1, "write", []string{"1", "0x0", "1"}))
			}
		}(pid)
	}
	wg.Wait()

	require.Len(t, rec.chunks, 400)
	for _, c := range rec.chunks {
		assert.True(t, strings.HasSuffix(c, ")\n"), c)
		assert.Equal(t, 1, strings.Count(c, "\n"))
	}
}

func TestCloseLogsCount(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ep := NewEventProcessor(&bytes.Buffer{}, false, logger)
	require.NoError(t, ep.Write(&event.ExitEvent{Pid: 3, Code: 1}))

	require.NoError(t, ep.Close())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, uint64(1), hook.LastEntry().Data["events"])
}
