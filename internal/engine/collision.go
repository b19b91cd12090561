package engine

// Collide notifies every overlapping pair of solids. Pairs (i, j) with i < j
// are visited in list order and both entities are told, each receiving the
// other. A pair is tested once per call even if a callback moves an entity.
func Collide(solids []*Entity) {
	for i := 0; i < len(solids)-1; i++ {
		a := solids[i]
		for j := i + 1; j < len(solids); j++ {
			b := solids[j]
			if a.Overlaps(b) {
				a.hooks().OnCollision(a, b)
				b.hooks().OnCollision(b, a)
			}
		}
	}
}
