package trial

import (
	"sync"
	"time"
)

// Scheduler starts periodic tick subscriptions.
type Scheduler interface {
	// Every calls fn once per interval until the returned stop func is called.
	// Stop must not block on a running fn.
	Every(interval time.Duration, fn func()) (stop func())
}

// TickerScheduler runs each subscription on its own goroutine backed by a time.Ticker.
type TickerScheduler struct{}

// Every implements Scheduler.
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
