package countdown_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/countdown"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTimerLifecycle(t *testing.T) {
	Convey("Given a fresh timer", t, func() {
		timer := countdown.New(countdown.WithLimit(15 * time.Second))

		Convey("Then it starts idle with the full limit remaining", func() {
			So(timer.State(), ShouldEqual, countdown.StateIdle)
			So(timer.Remaining(), ShouldEqual, 15*time.Second)
		})

		Convey("When reset with a new limit", func() {
			timer.Reset(20 * time.Second)

			Convey("Then the limit changes and the timer stays idle", func() {
				So(timer.Limit(), ShouldEqual, 20*time.Second)
				So(timer.State(), ShouldEqual, countdown.StateIdle)
			})
		})

		Convey("When reset with a non-positive limit", func() {
			timer.Reset(0)

			Convey("Then the previous limit is kept", func() {
				So(timer.Limit(), ShouldEqual, 15*time.Second)
			})
		})
	})
}

func TestTimerExpiry(t *testing.T) {
	Convey("Given a short running countdown", t, func() {
		var expiries atomic.Int64
		var ticks atomic.Int64

		timer := countdown.New(
			countdown.WithLimit(60*time.Millisecond),
			countdown.WithInterval(5*time.Millisecond),
			countdown.WithOnTick(func(time.Duration) { ticks.Add(1) }),
			countdown.WithOnExpire(func() { expiries.Add(1) }),
		)

		Convey("When it runs to completion", func() {
			timer.Start(context.Background())
			time.Sleep(200 * time.Millisecond)

			Convey("Then expiry fires exactly once, not once per tick", func() {
				So(expiries.Load(), ShouldEqual, 1)
				So(ticks.Load(), ShouldBeGreaterThan, 1)
				So(timer.State(), ShouldEqual, countdown.StateExpired)
				So(timer.Remaining(), ShouldEqual, 0)
			})
		})

		Convey("When stopped before expiry", func() {
			timer.Start(context.Background())
			time.Sleep(15 * time.Millisecond)
			timer.Stop()
			time.Sleep(150 * time.Millisecond)

			Convey("Then no expiry fires and the timer is idle", func() {
				So(expiries.Load(), ShouldEqual, 0)
				So(timer.State(), ShouldEqual, countdown.StateIdle)
			})
		})

		Convey("When reset mid-run", func() {
			timer.Start(context.Background())
			time.Sleep(15 * time.Millisecond)
			timer.Reset(60 * time.Millisecond)
			time.Sleep(150 * time.Millisecond)

			Convey("Then the stale generation never fires", func() {
				So(expiries.Load(), ShouldEqual, 0)
				So(timer.State(), ShouldEqual, countdown.StateIdle)
			})
		})

		Convey("When restarted while running", func() {
			timer.Start(context.Background())
			time.Sleep(15 * time.Millisecond)
			timer.Start(context.Background())
			time.Sleep(200 * time.Millisecond)

			Convey("Then only the new generation expires", func() {
				So(expiries.Load(), ShouldEqual, 1)
			})
		})

		Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			timer.Start(ctx)
			cancel()
			time.Sleep(150 * time.Millisecond)

			Convey("Then the tick loop stops without firing expiry", func() {
				So(expiries.Load(), ShouldEqual, 0)
			})
		})
	})
}

func TestRemainingIsMonotonic(t *testing.T) {
	Convey("Given a running countdown", t, func() {
		var samples []time.Duration
		done := make(chan struct{})

		timer := countdown.New(
			countdown.WithLimit(80*time.Millisecond),
			countdown.WithInterval(5*time.Millisecond),
			countdown.WithOnTick(func(remaining time.Duration) {
				samples = append(samples, remaining)
			}),
			countdown.WithOnExpire(func() { close(done) }),
		)

		timer.Start(context.Background())
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("countdown never expired")
		}

		Convey("Then reported remaining time never increases", func() {
			So(len(samples), ShouldBeGreaterThan, 0)
			for i := 1; i < len(samples); i++ {
				So(samples[i], ShouldBeLessThanOrEqualTo, samples[i-1])
			}
		})
	})
}

func TestDeterministicClock(t *testing.T) {
	Convey("Given a timer with an injected clock", t, func() {
		base := time.Unix(0, 0)
		current := base
		timer := countdown.New(
			countdown.WithLimit(15*time.Second),
			countdown.WithClock(func() time.Time { return current }),
		)

		timer.Start(context.Background())

		Convey("When the clock advances", func() {
			current = base.Add(9 * time.Second)

			Convey("Then remaining reflects elapsed clock time", func() {
				So(timer.Remaining(), ShouldEqual, 6*time.Second)
			})
		})

		Convey("When the clock passes the limit", func() {
			current = base.Add(16 * time.Second)

			Convey("Then remaining clamps to zero", func() {
				So(timer.Remaining(), ShouldEqual, 0)
			})
		})

		timer.Stop()
	})
}
