package sat

import "math"

// luby returns the value at index x of the Luby sequence scaled by y:
// 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,... Used to size successive conflict budgets
// as luby(2.0, restart) * base, the classic universal restart schedule.
func luby(y float64, x int) float64 {
	size, seq := 1, 0
	for size < x+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x = x % size
	}
	return math.Pow(y, float64(seq))
}
