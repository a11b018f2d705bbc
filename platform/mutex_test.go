package platform_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-platform/api"
	"github.com/momentics/hioload-platform/platform"
)

func TestMutexMutualExclusion(t *testing.T) {
	const threads, iterations = 8, 10000
	m := platform.NewMutex()
	defer m.Destroy()

	var inside, violations atomic.Int32
	counter := 0
	handles := make([]*platform.Thread, 0, threads)
	for i := 0; i < threads; i++ {
		th, err := platform.CreateThread(func(any) {
			for j := 0; j < iterations; j++ {
				m.Enter()
				if inside.Add(1) != 1 {
					violations.Add(1)
				}
				counter++
				inside.Add(-1)
				m.Exit()
			}
		}, nil, false)
		require.NoError(t, err)
		handles = append(handles, th)
	}
	for _, th := range handles {
		require.NoError(t, th.Join())
	}
	assert.Zero(t, violations.Load())
	assert.Equal(t, threads*iterations, counter)
}

func TestMutexTryEnterBusyDoesNotBlock(t *testing.T) {
	m := platform.NewMutex()
	defer m.Destroy()

	held := make(chan struct{})
	th, err := platform.CreateThread(func(any) {
		m.Enter()
		close(held)
		time.Sleep(100 * time.Millisecond)
		m.Exit()
	}, nil, false)
	require.NoError(t, err)
	<-held

	start := time.Now()
	err = m.TryEnter()
	elapsed := time.Since(start)
	assert.ErrorIs(t, err, api.ErrBusy)
	assert.ErrorIs(t, err, unix.EBUSY)
	assert.Less(t, elapsed, 10*time.Millisecond)

	require.NoError(t, th.Join())
	require.NoError(t, m.TryEnter())
	assert.ErrorIs(t, m.TryEnter(), api.ErrBusy, "owner retrying is busy too")
	m.Exit()
}

func TestMutexWithReleasesOnPanic(t *testing.T) {
	m := platform.NewMutex()
	defer m.Destroy()

	assert.Panics(t, func() {
		m.With(func() { panic("boom") })
	})
	require.NoError(t, m.TryEnter())
	m.Exit()

	ran := false
	m.With(func() { ran = true })
	assert.True(t, ran)
}

func TestMutexReinitAfterDestroy(t *testing.T) {
	var m platform.Mutex
	m.Init()
	m.Enter()
	m.Exit()
	m.Destroy()
	m.InitKind(platform.MutexErrorCheck)
	assert.Equal(t, platform.MutexErrorCheck, m.Kind())
	m.Enter()
	m.Exit()
	m.Destroy()
}

func TestMutexFatalMisuse(t *testing.T) {
	cases := []struct {
		name string
		run  func()
		want string
	}{
		{
			name: "enter uninitialized",
			run: func() {
				var m platform.Mutex
				m.Enter()
			},
			want: "mutex enter failed: " + unix.EINVAL.Error(),
		},
		{
			name: "enter destroyed",
			run: func() {
				m := platform.NewMutex()
				m.Destroy()
				m.Enter()
			},
			want: "mutex enter failed: " + unix.EINVAL.Error(),
		},
		{
			name: "exit not held",
			run: func() {
				platform.NewMutex().Exit()
			},
			want: "mutex exit failed: " + unix.EPERM.Error(),
		},
		{
			name: "destroy held",
			run: func() {
				m := platform.NewMutex()
				m.Enter()
				m.Destroy()
			},
			want: "mutex destroy failed: " + unix.EBUSY.Error(),
		},
		{
			name: "double initialize",
			run: func() {
				platform.NewMutex().Init()
			},
			want: "mutex initialize failed: " + unix.EBUSY.Error(),
		},
		{
			name: "errorcheck relock by owner",
			run: func() {
				m := platform.NewMutexKind(platform.MutexErrorCheck)
				m.Enter()
				m.Enter()
			},
			want: "mutex enter failed: " + unix.EDEADLK.Error(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diag, code := platform.CatchFatal(tc.run)
			assert.Equal(t, platform.AbortExitCode, code)
			assert.Contains(t, diag, "[platform] ")
			assert.Contains(t, diag, tc.want)
		})
	}
}

func TestMutexErrorCheckExitByNonOwner(t *testing.T) {
	m := platform.NewMutexKind(platform.MutexErrorCheck)
	m.Enter()

	result := make(chan string, 1)
	go func() {
		diag, _ := platform.CatchFatal(m.Exit)
		result <- diag
	}()
	assert.Contains(t, <-result, "mutex exit failed: "+unix.EPERM.Error())

	m.Exit()
	m.Destroy()
}

func TestMutexNormalKindAllowsHandoffUnlock(t *testing.T) {
	m := platform.NewMutexKind(platform.MutexNormal)
	m.Enter()
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Exit()
	}()
	<-done
	require.NoError(t, m.TryEnter())
	m.Exit()
	m.Destroy()
}

func TestParseMutexKind(t *testing.T) {
	k, err := platform.ParseMutexKind("errorcheck")
	require.NoError(t, err)
	assert.Equal(t, "errorcheck", k.String())

	k, err = platform.ParseMutexKind("")
	require.NoError(t, err)
	assert.Equal(t, platform.MutexNormal, k)

	_, err = platform.ParseMutexKind("recursive")
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestAssert(t *testing.T) {
	diag, code := platform.CatchFatal(func() { platform.Assert(true, "unused") })
	assert.Empty(t, diag)
	assert.Zero(t, code)

	diag, code = platform.CatchFatal(func() { platform.Assert(1 > 2, "x=%d", 1) })
	assert.Equal(t, platform.AbortExitCode, code)
	assert.Contains(t, diag, "assertion failed: x=1")

	platform.InitializeSockets()
}
