package ecs

import "iter"

// Join yields, in creation order, every entity present in all given storages.
// It walks the smallest storage and probes the others. The sequence is lazy
// and can be ranged over any number of times; no storages yields nothing.
func Join(stores ...Joinable) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		if len(stores) == 0 {
			return
		}
		smallest := 0
		for i, s := range stores[1:] {
			if s.Len() < stores[smallest].Len() {
				smallest = i + 1
			}
		}
		for _, id := range stores[smallest].entities() {
			match := true
			for i, s := range stores {
				if i != smallest && !s.Has(id) {
					match = false
					break
				}
			}
			if match && !yield(id) {
				return
			}
		}
	}
}
