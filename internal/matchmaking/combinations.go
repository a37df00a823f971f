package matchmaking

// Quadruples returns every 4-player combination of pool, preserving pool
// order inside each combination.
func Quadruples(pool []string) [][4]string {
	n := len(pool)
	if n < 4 {
		return nil
	}
	out := make([][4]string, 0, n*(n-1)*(n-2)*(n-3)/24)
	for i := 0; i < n-3; i++ {
		for j := i + 1; j < n-2; j++ {
			for k := j + 1; k < n-1; k++ {
				for l := k + 1; l < n; l++ {
					out = append(out, [4]string{pool[i], pool[j], pool[k], pool[l]})
				}
			}
		}
	}
	return out
}

// TeamSplits returns the three distinct ways to pair up q: ab|cd, ac|bd and
// ad|bc.
func TeamSplits(q [4]string) [3]Split {
	a, b, c, d := q[0], q[1], q[2], q[3]
	return [3]Split{
		{A: [2]string{a, b}, B: [2]string{c, d}},
		{A: [2]string{a, c}, B: [2]string{b, d}},
		{A: [2]string{a, d}, B: [2]string{b, c}},
	}
}
