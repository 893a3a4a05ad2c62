package prefetch_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/prefetch"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// countingResolver records which aircraft it resolved.
type countingResolver struct {
	mu       sync.Mutex
	resolved map[string]int
}

func newCountingResolver() *countingResolver {
	return &countingResolver{resolved: make(map[string]int)}
}

func (c *countingResolver) Resolve(_ context.Context, rec catalog.Record) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved[rec.ID]++
	return "https://img.test/" + rec.ID + ".jpg"
}

func (c *countingResolver) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.resolved {
		n += v
	}
	return n
}

func TestQueue(t *testing.T) {
	Convey("Given a bounded queue", t, func() {
		q := prefetch.NewQueue(prefetch.WithCapacity(2))
		ctx := context.Background()

		Convey("When enqueuing within capacity", func() {
			So(q.Enqueue(ctx, catalog.Record{ID: "a"}), ShouldBeTrue)
			So(q.Enqueue(ctx, catalog.Record{ID: "b"}), ShouldBeTrue)
			So(q.Len(), ShouldEqual, 2)

			Convey("Then a full queue rejects without blocking", func() {
				So(q.Enqueue(ctx, catalog.Record{ID: "c"}), ShouldBeFalse)
				So(q.Len(), ShouldEqual, 2)
			})
		})

		Convey("When the queue is closed", func() {
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueue is rejected and closing again errors", func() {
				So(q.Enqueue(ctx, catalog.Record{ID: "a"}), ShouldBeFalse)
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Close(), ShouldEqual, prefetch.ErrClosed)
			})
		})
	})
}

func TestPoolWarmsRecords(t *testing.T) {
	Convey("Given a running pool", t, func() {
		q := prefetch.NewQueue()
		resolver := newCountingResolver()
		pool := prefetch.NewPool(q, resolver, prefetch.WithWorkers(3))

		ctx := context.Background()
		pool.Start(ctx)

		Convey("When warming a set of records", func() {
			records := []catalog.Record{
				{ID: "b747"}, {ID: "a380"}, {ID: "f22"}, {ID: "spitfire"}, {ID: "c172"},
			}
			accepted := pool.Warm(ctx, records)
			So(accepted, ShouldEqual, len(records))

			So(pool.Shutdown(ctx), ShouldBeNil)

			Convey("Then every record was resolved exactly once", func() {
				So(resolver.total(), ShouldEqual, len(records))
				for _, rec := range records {
					So(resolver.resolved[rec.ID], ShouldEqual, 1)
				}
			})
		})
	})
}

func TestPoolShutdownDrains(t *testing.T) {
	Convey("Given a pool with a single slow worker", t, func() {
		q := prefetch.NewQueue()
		resolver := newCountingResolver()
		pool := prefetch.NewPool(q, resolver, prefetch.WithWorkers(1))

		ctx := context.Background()
		pool.Start(ctx)

		Convey("When shutting down with queued records", func() {
			for i := 0; i < 10; i++ {
				q.Enqueue(ctx, catalog.Record{ID: "b747"})
			}
			So(pool.Shutdown(ctx), ShouldBeNil)

			Convey("Then the backlog was drained before the workers exited", func() {
				So(resolver.total(), ShouldEqual, 10)
			})
		})
	})
}

func TestPoolStopsOnContextCancel(t *testing.T) {
	Convey("Given a pool bound to a cancelable context", t, func() {
		q := prefetch.NewQueue()
		resolver := newCountingResolver()
		pool := prefetch.NewPool(q, resolver, prefetch.WithWorkers(2))

		ctx, cancel := context.WithCancel(context.Background())
		pool.Start(ctx)

		Convey("When the context is canceled", func() {
			cancel()
			time.Sleep(20 * time.Millisecond)

			Convey("Then shutdown still returns cleanly", func() {
				So(pool.Shutdown(context.Background()), ShouldBeNil)
			})
		})
	})
}
