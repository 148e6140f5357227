package game

import (
	"sync"
	"time"

	log "github.com/jeanphorn/log4go"
)

const (
	DefaultInterval = 800 * time.Millisecond
	MinInterval     = 80 * time.Millisecond
	LevelSpeedup    = 70 * time.Millisecond
)

// IntervalForLevel returns the gravity period for a level.
func IntervalForLevel(level int) time.Duration {
	d := DefaultInterval - time.Duration(level)*LevelSpeedup
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// Loop calls step once per interval while running. Ticks are handed to post,
// which runs them on the event goroutine (tview's QueueUpdateDraw); by
// default they run on the ticker goroutine.
type Loop struct {
	interval time.Duration
	step     func()
	post     func(func())

	running bool
	gen     uint64
	stop    chan struct{}

	m sync.Mutex
}

type LoopOption func(*Loop)

func WithPost(post func(func())) LoopOption {
	return func(l *Loop) {
		l.post = post
	}
}

func NewLoop(interval time.Duration, step func(), options ...LoopOption) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}

	l := &Loop{
		interval: interval,
		step:     step,
		post:     func(f func()) { f() },
	}
	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *Loop) Running() bool {
	l.m.Lock()
	defer l.m.Unlock()

	return l.running
}

func (l *Loop) Interval() time.Duration {
	l.m.Lock()
	defer l.m.Unlock()

	return l.interval
}

// Start resumes ticking. Starting a running loop does nothing.
func (l *Loop) Start() {
	l.m.Lock()
	defer l.m.Unlock()

	l.startL()
}

func (l *Loop) startL() {
	if l.running {
		return
	}

	l.running = true
	l.gen++
	l.stop = make(chan struct{})

	go l.run(l.gen, l.interval, l.stop)
}

// Stop halts ticking. Ticks already handed to post are dropped, so step is
// not called again until Start. Stopping a stopped loop does nothing.
func (l *Loop) Stop() {
	l.m.Lock()
	defer l.m.Unlock()

	l.stopL()
}

func (l *Loop) stopL() {
	if !l.running {
		return
	}

	l.running = false
	close(l.stop)
}

// SetInterval changes the tick period, restarting the ticker if running.
func (l *Loop) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}

	l.m.Lock()
	defer l.m.Unlock()

	if d == l.interval {
		return
	}
	l.interval = d

	if l.running {
		l.stopL()
		l.startL()
	}

	log.Debug("Tick interval set to %s", d)
}

func (l *Loop) run(gen uint64, interval time.Duration, stop chan struct{}) {
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			l.post(func() { l.fire(gen) })
		}
	}
}

func (l *Loop) fire(gen uint64) {
	l.m.Lock()
	current := l.running && l.gen == gen
	l.m.Unlock()

	if current {
		l.step()
	}
}
