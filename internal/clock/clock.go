package clock

import (
	"sync"
	"time"
)

// Timer — отменяемый таймер. Stop можно вызывать сколько угодно раз.
type Timer interface {
	Stop()
}

// Clock планирует периодические и одноразовые вызовы.
// Интерфейс нужен, чтобы в тестах подменять реальное время на Manual.
type Clock interface {
	// Every вызывает f каждые d, пока таймер не остановлен.
	Every(d time.Duration, f func()) Timer

	// AfterFunc вызывает f один раз через d.
	AfterFunc(d time.Duration, f func()) Timer
}

// System — Clock поверх пакета time.
type System struct{}

// NewSystem создаёт System.
func NewSystem() System {
	return System{}
}

// Every запускает горутину с тикером.
func (System) Every(d time.Duration, f func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-t.ticker.C:
				f()
			case <-t.done:
				return
			}
		}
	}()

	return t
}

// AfterFunc оборачивает time.AfterFunc.
func (System) AfterFunc(d time.Duration, f func()) Timer {
	return onceTimer{t: time.AfterFunc(d, f)}
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

type onceTimer struct {
	t *time.Timer
}

func (o onceTimer) Stop() {
	o.t.Stop()
}
