package clock

import (
	"sync"
	"time"
)

// Manual — Clock, время которого двигается только вызовом Advance.
// Колбэки выполняются синхронно в горутине, вызвавшей Advance.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

// NewManual создаёт Manual с нулевым временем.
func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	m       *Manual
	at      time.Duration
	period  time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	t.stopped = true
}

// Every планирует периодический вызов.
func (m *Manual) Every(d time.Duration, f func()) Timer {
	return m.schedule(d, d, f)
}

// AfterFunc планирует одноразовый вызов.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	return m.schedule(d, 0, f)
}

func (m *Manual) schedule(d, period time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		m:      m,
		at:     m.now + d,
		period: period,
		seq:    m.seq,
		fn:     f,
	}
	m.timers = append(m.timers, t)

	return t
}

// Advance сдвигает время на d и по порядку вызывает все созревшие колбэки.
// Колбэки могут сами ставить и отменять таймеры.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()

		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()

			return
		}

		m.now = next.at
		if next.period > 0 {
			next.at += next.period
		} else {
			next.stopped = true
		}
		fn := next.fn

		m.mu.Unlock()

		fn()
	}
}

// nextDue возвращает самый ранний живой таймер не позже target
// и заодно выкидывает остановленные. Вызывается под m.mu.
func (m *Manual) nextDue(target time.Duration) *manualTimer {
	alive := m.timers[:0]

	var next *manualTimer
	for _, t := range m.timers {
		if t.stopped {
			continue
		}
		alive = append(alive, t)

		if t.at > target {
			continue
		}

		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	m.timers = alive

	return next
}

// Pending возвращает количество активных таймеров.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}

	return n
}

// Elapsed возвращает время, прошедшее с создания.
func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}
