// Package progression derives a player's level from experience.
//
// Level n is reached at 50·n·(n+1) experience, so the level for a given
// experience is the floor of the inverse: (isqrt(2500 + 200·xp) - 50) / 100.
package progression

import "math"

// CurrentLevel returns the level reached with the given experience.
// Negative experience is treated as zero.
func CurrentLevel(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return (isqrt(2500+200*experience) - 50) / 100
}

// ExperienceUntilNextLevel returns how much experience is missing to reach level+1.
// level must be CurrentLevel(experience) for the result to be non-negative.
func ExperienceUntilNextLevel(experience, level int) int {
	return 50*(level+1)*(level+2) - experience
}

// Progress computes level and experience-until-next-level together
func Progress(experience int) (level, untilNext int) {
	level = CurrentLevel(experience)
	return level, ExperienceUntilNextLevel(experience, level)
}

// isqrt returns floor(sqrt(n)) for n >= 0
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	// float rounding can be off by one near perfect squares
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
