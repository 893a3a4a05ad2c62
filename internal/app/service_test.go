package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/store"
	service "github.com/nahubn1/airplane-recognition-quiz/internal/app"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/round"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/types"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, rec catalog.Record) string {
	return "https://img.test/" + rec.ID + ".jpg"
}

func startService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	kv, err := store.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	base := []service.Option{
		service.WithStore(kv),
		service.WithResolver(stubResolver{}),
	}
	svc := service.New(append(base, opts...)...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

// playQuestion answers the current question with its first option and
// returns the outcome.
func playQuestion(ctx context.Context, svc *service.Service, view types.RoundView) (types.OutcomeView, error) {
	return svc.SubmitAnswer(ctx, view.RoundID, view.Question.Options[0].ID)
}

func TestStartRoundValidation(t *testing.T) {
	Convey("Given a running service", t, func() {
		svc := startService(t)
		ctx := context.Background()

		Convey("An unknown category is rejected", func() {
			_, err := svc.StartRound(ctx, []string{"spacecraft"}, 0)
			So(err, ShouldWrap, catalog.ErrUnknownCategory)
		})

		Convey("A length outside the bounds is rejected", func() {
			_, err := svc.StartRound(ctx, nil, 3)
			So(err, ShouldWrap, service.ErrInvalidLength)

			_, err = svc.StartRound(ctx, nil, 21)
			So(err, ShouldWrap, service.ErrInvalidLength)
		})

		Convey("A zero length takes the default", func() {
			view, err := svc.StartRound(ctx, nil, 0)
			So(err, ShouldBeNil)
			So(view.State, ShouldEqual, types.StateInRound)
			So(view.Question, ShouldNotBeNil)
			So(view.Question.Total, ShouldEqual, 10)
			So(view.Question.Index, ShouldEqual, 1)
			So(view.Question.Options, ShouldHaveLength, 4)
			So(view.RoundID, ShouldNotBeEmpty)
		})
	})
}

func TestRoundLifecycle(t *testing.T) {
	Convey("Given a started round of five questions", t, func() {
		svc := startService(t)
		ctx := context.Background()

		view, err := svc.StartRound(ctx, nil, 5)
		So(err, ShouldBeNil)

		Convey("When playing every question", func() {
			var lastOutcome types.OutcomeView
			for i := 0; i < 5; i++ {
				out, err := playQuestion(ctx, svc, view)
				if err != nil {
					t.Fatalf("answer question %d: %v", i+1, err)
				}
				lastOutcome = out

				view, err = svc.Advance(ctx, view.RoundID)
				if err != nil {
					t.Fatalf("advance from question %d: %v", i+1, err)
				}
			}

			Convey("Then the round completes with a summary", func() {
				So(view.State, ShouldEqual, types.StateRoundComplete)
				So(view.Summary, ShouldNotBeNil)
				So(view.Summary.Questions, ShouldEqual, 5)
				So(view.Summary.Score, ShouldEqual, lastOutcome.Score)
				So(view.Summary.CorrectCount, ShouldBeBetweenOrEqual, 0, 5)
			})

			Convey("And the score can be saved exactly once", func() {
				placement, err := svc.SaveScore(ctx, view.RoundID, "Ada")
				So(err, ShouldBeNil)
				if view.Summary.Score > 0 {
					So(placement.Qualified, ShouldBeTrue)
					So(placement.Entries[placement.Position-1].Name, ShouldEqual, "Ada")
				}

				_, err = svc.SaveScore(ctx, view.RoundID, "Ada")
				So(err, ShouldWrap, service.ErrScoreSaved)
			})

			Convey("And advancing past the end is rejected", func() {
				_, err := svc.Advance(ctx, view.RoundID)
				So(err, ShouldWrap, round.ErrRoundComplete)
			})
		})

		Convey("When answering twice", func() {
			_, err := playQuestion(ctx, svc, view)
			So(err, ShouldBeNil)

			_, err = playQuestion(ctx, svc, view)
			So(err, ShouldWrap, round.ErrAlreadyAnswered)
		})

		Convey("When advancing before answering", func() {
			_, err := svc.Advance(ctx, view.RoundID)
			So(err, ShouldWrap, round.ErrAnswerPending)
		})

		Convey("When saving before the round is complete", func() {
			_, err := svc.SaveScore(ctx, view.RoundID, "Ada")
			So(err, ShouldWrap, service.ErrRoundNotComplete)
		})

		Convey("An unknown round id is not found", func() {
			_, err := svc.GetRound(ctx, "nope")
			So(err, ShouldWrap, service.ErrRoundNotFound)
		})
	})
}

func TestCountdownExpiresQuestion(t *testing.T) {
	Convey("Given a round with a very short time limit", t, func() {
		svc := startService(t, service.WithTimeLimit(80*time.Millisecond))
		ctx := context.Background()

		view, err := svc.StartRound(ctx, nil, 5)
		So(err, ShouldBeNil)

		Convey("When the countdown runs out", func() {
			time.Sleep(300 * time.Millisecond)

			Convey("Then the question is settled as a timeout", func() {
				_, err := playQuestion(ctx, svc, view)
				So(err, ShouldWrap, round.ErrAlreadyAnswered)

				next, err := svc.Advance(ctx, view.RoundID)
				So(err, ShouldBeNil)
				So(next.Score, ShouldEqual, 0)
				So(next.Streak, ShouldEqual, 0)
			})
		})
	})
}

func TestLearnModeLookups(t *testing.T) {
	Convey("Given a running service", t, func() {
		svc := startService(t)
		ctx := context.Background()

		Convey("The full catalog lists every aircraft", func() {
			all, err := svc.Aircraft(ctx, "")
			So(err, ShouldBeNil)
			So(len(all), ShouldBeGreaterThanOrEqualTo, 16)
		})

		Convey("A category filter narrows the listing", func() {
			military, err := svc.Aircraft(ctx, "military")
			So(err, ShouldBeNil)
			So(len(military), ShouldBeGreaterThanOrEqualTo, 4)
			for _, a := range military {
				So(a.Category, ShouldEqual, "military")
			}
		})

		Convey("An unknown category errors", func() {
			_, err := svc.Aircraft(ctx, "spacecraft")
			So(err, ShouldWrap, catalog.ErrUnknownCategory)
		})

		Convey("Images resolve per record", func() {
			url, err := svc.AircraftImage(ctx, "b747")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://img.test/b747.jpg")

			_, err = svc.AircraftImage(ctx, "x-wing")
			So(err, ShouldWrap, service.ErrUnknownAircraft)
		})
	})
}

func TestLeaderboardThroughService(t *testing.T) {
	Convey("Given a service with saved scores", t, func() {
		svc := startService(t)
		ctx := context.Background()

		Convey("The leaderboard starts empty", func() {
			entries, err := svc.Leaderboard(ctx, 10)
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("Reset clears it", func() {
			So(svc.ResetLeaderboard(ctx), ShouldBeNil)
			entries, err := svc.Leaderboard(ctx, 10)
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})
	})
}

func TestGetStats(t *testing.T) {
	Convey("Given a running service", t, func() {
		svc := startService(t)

		Convey("Stats report the service shape", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["activeSessions"], ShouldEqual, 0)
			So(stats["catalogSize"], ShouldBeGreaterThan, 0)
		})
	})
}
