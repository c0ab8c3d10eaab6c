package util

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func CopyIntSlice(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func CopyFloatSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
