package seen_test

import (
	"sync"
	"testing"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/seen"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSet(t *testing.T) {
	Convey("Given an empty seen-set", t, func() {
		s := seen.NewSet()

		Convey("When recording a key for the first time", func() {
			already := s.SeenAndRecord("b747")

			Convey("Then it was not previously seen", func() {
				So(already, ShouldBeFalse)
				So(s.Seen("b747"), ShouldBeTrue)
				So(s.Size(), ShouldEqual, 1)
			})

			Convey("And recording it again reports it as seen", func() {
				So(s.SeenAndRecord("b747"), ShouldBeTrue)
				So(s.Size(), ShouldEqual, 1)
			})
		})

		Convey("When unrecording a key", func() {
			s.Record("spitfire")
			s.Unrecord("spitfire")

			Convey("Then it can be recorded again", func() {
				So(s.Seen("spitfire"), ShouldBeFalse)
				So(s.SeenAndRecord("spitfire"), ShouldBeFalse)
			})
		})

		Convey("When resetting after exhaustion", func() {
			s.Record("a")
			s.Record("b")
			s.Reset()

			Convey("Then the set is empty", func() {
				So(s.Size(), ShouldEqual, 0)
				So(s.Seen("a"), ShouldBeFalse)
			})
		})

		Convey("When recording concurrently", func() {
			var wg sync.WaitGroup
			var firsts sync.Map
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func(n int) {
					defer wg.Done()
					if !s.SeenAndRecord("same-key") {
						firsts.Store(n, true)
					}
				}(i)
			}
			wg.Wait()

			Convey("Then exactly one goroutine records it first", func() {
				count := 0
				firsts.Range(func(_, _ any) bool { count++; return true })
				So(count, ShouldEqual, 1)
				So(s.Size(), ShouldEqual, 1)
			})
		})
	})
}
