package sorting_test

import (
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/sorting"
)

func run(kind sorting.Kind, data []int) []sorting.Snapshot {
	e, err := sorting.New(kind, data)
	Expect(err).NotTo(HaveOccurred())
	return sorting.Collect(e)
}

func snap(values []int, boundary int, active ...int) sorting.Snapshot {
	if active == nil {
		active = []int{}
	}
	return sorting.Snapshot{Values: values, Boundary: boundary, Active: active}
}

func sorted(data []int) []int {
	out := make([]int, len(data))
	copy(out, data)
	slices.Sort(out)
	return out
}

var inputs = map[string][]int{
	"empty":      {},
	"single":     {7},
	"pair":       {2, 1},
	"sorted":     {1, 2, 3, 4, 5},
	"reversed":   {9, 7, 5, 3, 1},
	"duplicates": {4, 1, 4, 2, 1, 4},
	"negatives":  {0, -3, 5, -3, 0, 12, -1},
}

var _ = Describe("Engines", func() {
	for _, kind := range sorting.Kinds() {
		Describe(kind.String(), func() {
			for name, data := range inputs {
				It("ends sorted with a full boundary on "+name+" input", func() {
					snaps := run(kind, data)
					Expect(snaps).NotTo(BeEmpty())

					last := snaps[len(snaps)-1]
					Expect(last.Values).To(Equal(sorted(data)))
					Expect(last.Boundary).To(Equal(len(data) - 1))
					Expect(last.Active).To(BeEmpty())
				})

				It("keeps every frame well formed on "+name+" input", func() {
					n := len(data)
					for _, s := range run(kind, data) {
						Expect(s.Values).To(HaveLen(n))
						Expect(s.Boundary).To(BeNumerically(">=", -1))
						Expect(s.Boundary).To(BeNumerically("<", max(n, 1)))
						Expect(len(s.Active)).To(BeNumerically("<=", 2))
						for _, idx := range s.Active {
							Expect(idx).To(BeNumerically(">=", 0))
							Expect(idx).To(BeNumerically("<", n))
						}
					}
				})
			}

			It("matches a trusted sort on random input", func() {
				rng := rand.New(rand.NewSource(42))
				for range 50 {
					data := make([]int, rng.Intn(15))
					for i := range data {
						data[i] = rng.Intn(40) - 10
					}
					snaps := run(kind, data)
					Expect(snaps[len(snaps)-1].Values).To(Equal(sorted(data)))
				}
			})

			It("never touches the caller's slice", func() {
				data := []int{3, 1, 2}
				run(kind, data)
				Expect(data).To(Equal([]int{3, 1, 2}))
			})

			It("hands out independent copies", func() {
				snaps := run(kind, []int{3, 1, 2})
				first := slices.Clone(snaps[0].Values)
				snaps[1].Values[0] = 99
				Expect(snaps[0].Values).To(Equal(first))
			})

			It("cannot be restarted once exhausted", func() {
				e, err := sorting.New(kind, []int{2, 1})
				Expect(err).NotTo(HaveOccurred())
				sorting.Collect(e)
				Expect(e.HasNext()).To(BeFalse())
				_, ok := e.Next()
				Expect(ok).To(BeFalse())
				Expect(sorting.Collect(e)).To(BeEmpty())
			})

			It("emits a single frame for empty input", func() {
				Expect(run(kind, nil)).To(Equal([]sorting.Snapshot{snap([]int{}, -1)}))
			})
		})
	}

	Describe("InsertionSort", func() {
		It("highlights, shifts, commits then finishes on [5 2 4]", func() {
			Expect(run(sorting.Insertion, []int{5, 2, 4})).To(Equal([]sorting.Snapshot{
				snap([]int{5, 2, 4}, 0, 1),
				snap([]int{2, 5, 4}, 0, 0, 1),
				snap([]int{2, 5, 4}, 1, 0),
				snap([]int{2, 5, 4}, 1, 2),
				snap([]int{2, 4, 5}, 1, 1, 2),
				snap([]int{2, 4, 5}, 2, 1),
				snap([]int{2, 4, 5}, 2),
			}))
		})

		It("only emits the final frame for a single value", func() {
			Expect(run(sorting.Insertion, []int{7})).To(Equal([]sorting.Snapshot{snap([]int{7}, 0)}))
		})

		It("shows the key at its candidate slot while shifting", func() {
			snaps := run(sorting.Insertion, []int{3, 2, 1})
			// key 1 travels left across two shifts
			Expect(snaps).To(ContainElement(snap([]int{2, 1, 3}, 1, 1, 2)))
			Expect(snaps).To(ContainElement(snap([]int{1, 2, 3}, 1, 0, 1)))
		})
	})

	Describe("BubbleSort", func() {
		It("compares, swaps then finishes on [2 1]", func() {
			Expect(run(sorting.Bubble, []int{2, 1})).To(Equal([]sorting.Snapshot{
				snap([]int{2, 1}, 1, 0, 1),
				snap([]int{1, 2}, 1, 0, 1),
				snap([]int{1, 2}, 1),
			}))
		})

		It("emits a single compare per pair when nothing moves", func() {
			snaps := run(sorting.Bubble, []int{1, 2, 3})
			Expect(snaps).To(Equal([]sorting.Snapshot{
				snap([]int{1, 2, 3}, 2, 0, 1),
				snap([]int{1, 2, 3}, 2, 1, 2),
				snap([]int{1, 2, 3}, 1, 0, 1),
				snap([]int{1, 2, 3}, 2),
			}))
		})
	})

	Describe("SelectionSort", func() {
		It("announces, scans, tracks the minimum and swaps on [3 1 2]", func() {
			Expect(run(sorting.Selection, []int{3, 1, 2})).To(Equal([]sorting.Snapshot{
				snap([]int{3, 1, 2}, -1, 0),
				snap([]int{3, 1, 2}, -1, 0, 1),
				snap([]int{3, 1, 2}, -1, 1),
				snap([]int{3, 1, 2}, -1, 1, 2),
				snap([]int{1, 3, 2}, 0, 0, 1),
				snap([]int{1, 3, 2}, 0, 1),
				snap([]int{1, 3, 2}, 0, 1, 2),
				snap([]int{1, 3, 2}, 0, 2),
				snap([]int{1, 2, 3}, 1, 1, 2),
				snap([]int{1, 2, 3}, 1, 2),
				snap([]int{1, 2, 3}, 2, 2),
				snap([]int{1, 2, 3}, 2),
			}))
		})
	})

	Describe("All", func() {
		It("yields the same frames as Collect", func() {
			e, _ := sorting.New(sorting.Selection, []int{4, 2, 9, 1})
			var got []sorting.Snapshot
			for s := range sorting.All(e) {
				got = append(got, s)
			}
			Expect(got).To(Equal(run(sorting.Selection, []int{4, 2, 9, 1})))
		})

		It("stops early without losing the engine position", func() {
			e, _ := sorting.New(sorting.Bubble, []int{2, 1})
			for range sorting.All(e) {
				break
			}
			Expect(e.HasNext()).To(BeTrue())
			Expect(sorting.Collect(e)).To(HaveLen(2))
		})
	})
})
