package xp

// LevelExp is the experience needed to advance past level.
func LevelExp(level int) int64 {
	l := int64(level)
	return 5*l*l + 50*l + 100
}

// LevelFromXp returns the level reached with xp. Fresh users are level 1.
func LevelFromXp(xp int64) int {
	level := 0
	for xp >= LevelExp(level) {
		xp -= LevelExp(level)
		level++
	}

	return level + 1
}

// Progress returns the level reached with xp, the experience earned within that
// level and the experience the level requires in total.
func Progress(xp int64) (level int, current int64, required int64) {
	l := 0
	for xp >= LevelExp(l) {
		xp -= LevelExp(l)
		l++
	}

	return l + 1, xp, LevelExp(l)
}
