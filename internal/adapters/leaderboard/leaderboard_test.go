package leaderboard_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/leaderboard"
	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/store"
	. "github.com/smartystreets/goconvey/convey"
)

func openBoard(t *testing.T) (*leaderboard.Board, store.KV) {
	t.Helper()
	kv, err := store.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	tick := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	board := leaderboard.New(kv, leaderboard.WithClock(func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}))
	return board, kv
}

func TestSubmitAndList(t *testing.T) {
	Convey("Given an empty board", t, func() {
		board, _ := openBoard(t)
		ctx := context.Background()

		Convey("When submitting a first score", func() {
			result, err := board.Submit(ctx, "Ada", 420)

			Convey("Then it takes first place", func() {
				So(err, ShouldBeNil)
				So(result.Qualified, ShouldBeTrue)
				So(result.Position, ShouldEqual, 1)
				So(result.Entries, ShouldHaveLength, 1)
				So(result.Entries[0].Name, ShouldEqual, "Ada")
				So(result.Entries[0].Score, ShouldEqual, 420)
			})
		})

		Convey("When submitting several scores", func() {
			_, err := board.Submit(ctx, "Ada", 300)
			So(err, ShouldBeNil)
			_, err = board.Submit(ctx, "Grace", 500)
			So(err, ShouldBeNil)
			result, err := board.Submit(ctx, "Mary", 400)
			So(err, ShouldBeNil)

			Convey("Then the table lists highest first", func() {
				So(result.Position, ShouldEqual, 2)

				entries, err := board.List(ctx)
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Name, ShouldEqual, "Grace")
				So(entries[1].Name, ShouldEqual, "Mary")
				So(entries[2].Name, ShouldEqual, "Ada")
			})
		})

		Convey("When submitting a zero score", func() {
			result, err := board.Submit(ctx, "Ada", 0)

			Convey("Then it never qualifies", func() {
				So(err, ShouldBeNil)
				So(result.Qualified, ShouldBeFalse)
				So(result.Entries, ShouldBeEmpty)
			})
		})
	})
}

func TestTableCapsAtTen(t *testing.T) {
	Convey("Given a board filled with ten scores", t, func() {
		board, _ := openBoard(t)
		ctx := context.Background()

		for i := 1; i <= 10; i++ {
			_, err := board.Submit(ctx, "player"+strconv.Itoa(i), i*100)
			So(err, ShouldBeNil)
		}

		Convey("When an eleventh score beats the lowest entry", func() {
			result, err := board.Submit(ctx, "newcomer", 150)

			Convey("Then it enters and the lowest entry drops off", func() {
				So(err, ShouldBeNil)
				So(result.Qualified, ShouldBeTrue)
				So(result.Position, ShouldEqual, 10)
				So(result.Entries, ShouldHaveLength, leaderboard.MaxEntries)

				for _, entry := range result.Entries {
					So(entry.Score, ShouldBeGreaterThanOrEqualTo, 150)
				}
			})
		})

		Convey("When an eleventh score ties the lowest entry", func() {
			result, err := board.Submit(ctx, "newcomer", 100)

			Convey("Then it does not qualify", func() {
				So(err, ShouldBeNil)
				So(result.Qualified, ShouldBeFalse)
			})

			Convey("And Qualifies agrees", func() {
				ok, err := board.Qualifies(ctx, 100)
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)

				ok, err = board.Qualifies(ctx, 101)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			})
			_ = result
		})
	})
}

func TestReset(t *testing.T) {
	Convey("Given a board with entries", t, func() {
		board, kv := openBoard(t)
		ctx := context.Background()

		_, err := board.Submit(ctx, "Ada", 300)
		So(err, ShouldBeNil)

		Convey("When resetting", func() {
			So(board.Reset(ctx), ShouldBeNil)

			Convey("Then the table is empty and the slot is gone", func() {
				entries, err := board.List(ctx)
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)

				_, ok, err := kv.Get(ctx, store.NamespaceLeaderboard, "top")
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestCorruptSlotIsEmptyTable(t *testing.T) {
	Convey("Given a slot holding malformed JSON", t, func() {
		board, kv := openBoard(t)
		ctx := context.Background()

		So(kv.Set(ctx, store.NamespaceLeaderboard, "top", []byte("{{{")), ShouldBeNil)

		Convey("When listing", func() {
			entries, err := board.List(ctx)

			Convey("Then the table reads as empty", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})
	})
}

func TestSanitizeName(t *testing.T) {
	Convey("Given raw player names", t, func() {
		Convey("Then whitespace is trimmed", func() {
			So(leaderboard.SanitizeName("  Ada  "), ShouldEqual, "Ada")
		})
		Convey("Then empty names default", func() {
			So(leaderboard.SanitizeName(""), ShouldEqual, "Anonymous")
			So(leaderboard.SanitizeName("   "), ShouldEqual, "Anonymous")
		})
		Convey("Then long names are capped at 24 runes", func() {
			long := strings.Repeat("é", 40)
			So(leaderboard.SanitizeName(long), ShouldEqual, strings.Repeat("é", 24))
		})
	})
}
