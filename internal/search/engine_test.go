package search_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/expsearch/internal/search"
)

var _ = Describe("Exponential search", func() {
	Describe("normalization", func() {
		It("sorts a copy and leaves the input alone", func() {
			in := []int{8, 2, 4}
			Expect(search.Normalize(in)).To(Equal([]int{2, 4, 8}))
			Expect(in).To(Equal([]int{8, 2, 4}))
		})

		It("keeps duplicates", func() {
			Expect(search.Normalize([]int{3, 1, 3})).To(Equal([]int{1, 3, 3}))
		})

		It("searches the sorted order", func() {
			res := search.Search([]int{64, 2, 16, 8, 4, 32}, 16)
			Expect(res.Found()).To(BeTrue())
			Expect(res.Trace.Sequence()[res.Index]).To(Equal(16))
			Expect(res.Trace.Sequence()).To(Equal([]int{2, 4, 8, 16, 32, 64}))
		})
	})

	Describe("an empty sequence", func() {
		It("records a single Empty snapshot", func() {
			res := search.Search([]int{}, 1)
			Expect(res.Index).To(Equal(search.NotFound))
			Expect(res.Trace.Statuses()).To(Equal([]search.Status{search.StatusEmpty}))
			Expect(res.Trace.Last().Len()).To(BeZero())
		})
	})

	Describe("the first-element short-circuit", func() {
		It("stops after Start and Found", func() {
			res := search.Search([]int{5}, 5)
			Expect(res.Index).To(Equal(0))
			Expect(res.Trace.Len()).To(Equal(2))
			Expect(res.Trace.Last().Event).To(Equal(search.Found{Index: 0, Phase: search.PhaseBounding}))
		})

		It("never probes", func() {
			res := search.Search([]int{1, 2, 3, 4}, 1)
			Expect(res.Trace.Statuses()).NotTo(ContainElement(search.StatusProbing))
		})
	})

	Describe("the bounding phase", func() {
		var res search.Result[int]

		BeforeEach(func() {
			res = search.Search([]int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192}, 256)
		})

		It("probes doubling indices", func() {
			var probes []int
			for _, ev := range res.Trace.Events() {
				if p, ok := ev.(search.Probing); ok {
					probes = append(probes, p.I)
				}
			}
			Expect(probes).To(Equal([]int{1, 2, 4}))
		})

		It("derives the window from the stopping probe", func() {
			Expect(res.Trace.Events()).To(ContainElement(search.BoundFound{I: 8, Low: 4, High: 8}))
		})

		It("finds the target in the binary phase", func() {
			Expect(res.Index).To(Equal(7))
			found, ok := res.Trace.Last().Event.(search.Found)
			Expect(ok).To(BeTrue())
			Expect(found.Phase).To(Equal(search.PhaseBinary))
		})

		It("clamps the upper bound to the last index", func() {
			r := search.Search([]int{1, 2, 3, 4, 5, 6}, 6)
			Expect(r.Trace.Events()).To(ContainElement(search.BoundFound{I: 8, Low: 4, High: 5}))
			Expect(r.Index).To(Equal(5))
		})
	})

	Describe("an absent target", func() {
		It("ends with BinaryFailed then Done", func() {
			res := search.Search([]int{1, 3, 5, 7}, 4)
			Expect(res.Found()).To(BeFalse())
			statuses := res.Trace.Statuses()
			Expect(statuses[len(statuses)-2:]).To(Equal([]search.Status{search.StatusBinaryFailed, search.StatusDone}))
			Expect(statuses).NotTo(ContainElement(search.StatusFound))
		})

		It("handles a target below every element", func() {
			res := search.Search([]int{5, 6}, 1)
			Expect(res.Found()).To(BeFalse())
			Expect(res.Trace.Events()).To(ContainElement(search.BoundFound{I: 1, Low: 0, High: 1}))
		})
	})

	DescribeTable("actions describe each step",
		func(seq []int, target int, status search.Status, fragment string) {
			res := search.Search(seq, target)
			var actions []string
			for _, s := range res.Trace.All() {
				if s.Status() == status {
					actions = append(actions, s.Action)
				}
			}
			Expect(actions).NotTo(BeEmpty())
			Expect(actions[0]).To(ContainSubstring(fragment))
		},
		Entry("start", []int{1, 2}, 2, search.StatusStart, "must be sorted"),
		Entry("empty", []int{}, 2, search.StatusEmpty, "empty"),
		Entry("probe", []int{1, 2, 3}, 3, search.StatusProbing, "index 1"),
		Entry("bound", []int{1, 2, 3}, 3, search.StatusBoundFound, "[2 - 2]"),
		Entry("check", []int{1, 2, 3}, 3, search.StatusChecking, "mid=2"),
		Entry("done", []int{1, 2, 3}, 9, search.StatusDone, "not found"),
	)
})
