// Package scoring computes per-question points and the streak transition.
package scoring

import (
	"math"
)

// Scoring rule constants.
const (
	// BasePoints is awarded for any correct answer.
	BasePoints = 100
	// SpeedBonusMax is the speed bonus for an instant answer.
	SpeedBonusMax = 100
	// StreakBonusStep is awarded per consecutive correct answer held
	// before this one.
	StreakBonusStep = 20
)

// Points computes the points for an answered question.
//
// An incorrect or timed-out answer is worth zero. A correct answer earns the
// base, a speed bonus proportional to the time left, and a streak bonus for
// the streak held before answering. The speed term is rounded half away from
// zero (math.Round).
func Points(correct bool, timeRemaining, timeLimit float64, streak int) int {
	if !correct {
		return 0
	}
	return BasePoints + speedBonus(timeRemaining, timeLimit) + streakBonus(streak)
}

// speedBonus maps time remaining onto [0, SpeedBonusMax].
func speedBonus(timeRemaining, timeLimit float64) int {
	if timeLimit <= 0 {
		return 0
	}
	// Clamp to [0, timeLimit]; the countdown can briefly report values a
	// tick outside the window.
	remaining := math.Min(math.Max(timeRemaining, 0), timeLimit)
	return int(math.Round(remaining / timeLimit * SpeedBonusMax))
}

// streakBonus rewards the streak held before this answer.
func streakBonus(streak int) int {
	if streak <= 0 {
		return 0
	}
	return streak * StreakBonusStep
}

// NextStreak returns the streak after an answer: +1 on correct, reset on miss.
func NextStreak(correct bool, streak int) int {
	if !correct {
		return 0
	}
	return streak + 1
}

// BestStreak returns the running maximum of the streak observed so far.
func BestStreak(best, current int) int {
	if current > best {
		return current
	}
	return best
}
