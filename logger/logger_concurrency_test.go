package logger

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrency_NoInterleaving verifies that the dispatch lock keeps lines
// whole when many goroutines log to every port at once.
func TestConcurrency_NoInterleaving(t *testing.T) {
	l, out := newTestLogger(t, Config{Ports: AllPorts})
	var delivered atomic.Int64
	l.Subscribe(func(string) { delivered.Add(1) })

	const numGoroutines = 50
	const messagesPerGoroutine = 40

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				switch j % 3 {
				case 0:
					l.Infof("goroutine-%d-info-%d", id, j)
				case 1:
					l.Warningf("goroutine-%d-warn-%d", id, j)
				default:
					l.Errorf("goroutine-%d-error-%d", id, j)
				}
			}
		}(i)
	}
	wg.Wait()

	const expected = numGoroutines * messagesPerGoroutine
	assert.EqualValues(t, expected, delivered.Load())

	consoleLines := strings.Split(strings.TrimSpace(out.stdout.String()), "\n")
	require.Len(t, consoleLines, expected)
	fileLines := readLines(t, out.logPath)
	require.Len(t, fileLines, expected)

	for i, line := range fileLines {
		require.Regexp(t, linePattern, line)
		assert.Equal(t, consoleLines[i], line, "console and file order must match")
	}
}

// TestConcurrency_ConfigureDuringLogging races reconfiguration against logging.
func TestConcurrency_ConfigureDuringLogging(t *testing.T) {
	l, out := newTestLogger(t, Config{Ports: ConsolePort})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		levels := AllLevels()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				l.Configure("", levels[i%len(levels)], ConsolePort)
				_ = l.CurrentLogPath()
			}
		}
	}()

	var logged sync.WaitGroup
	for i := 0; i < 8; i++ {
		logged.Add(1)
		go func(id int) {
			defer logged.Done()
			for j := 0; j < 200; j++ {
				l.Errorf("worker-%d-%d", id, j)
				l.Info("maybe filtered")
			}
		}(i)
	}
	logged.Wait()
	close(stop)
	wg.Wait()

	// ERROR always passes the filter.
	assert.Equal(t, 8*200, strings.Count(out.stdout.String(), "[ERROR] worker-"))
}

// TestConcurrency_SubscribeDuringDispatch subscribes and unsubscribes from
// other goroutines and from inside a callback while messages flow.
func TestConcurrency_SubscribeDuringDispatch(t *testing.T) {
	l, _ := newTestLogger(t, Config{Ports: EventPort})

	var selfRemoving SubscriptionID
	var selfCalls atomic.Int64
	selfRemoving = l.Subscribe(func(string) {
		selfCalls.Add(1)
		l.Unsubscribe(selfRemoving)
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				sid := l.Subscribe(func(string) {})
				l.Infof("from %d", id)
				assert.True(t, l.Unsubscribe(sid))
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, selfCalls.Load())
	assert.Zero(t, l.events.len())
}
