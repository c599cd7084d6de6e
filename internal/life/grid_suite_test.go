package life_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifeterm/internal/life"
)

func board(width, height int, alive ...[2]int) *life.Grid {
	g, err := life.Seed("empty", width, height, 0, nil)
	Expect(err).NotTo(HaveOccurred())
	for _, p := range alive {
		g.Set(p[0], p[1], life.Alive)
	}
	return g
}

var _ = Describe("Grid", func() {
	Describe("neighbor counting on a torus", func() {
		const w, h = 7, 5

		DescribeTable("counts wrapped neighbors of the origin",
			func(row, col int) {
				g := board(w, h, [2]int{row, col})
				Expect(g.LiveNeighborCount(0, 0)).To(Equal(1))
			},
			Entry("opposite corner", h-1, w-1),
			Entry("wrapped row", h-1, 0),
			Entry("wrapped column", 0, w-1),
		)

		It("ignores cells two steps away", func() {
			g := board(w, h, [2]int{2, 2}, [2]int{0, 2}, [2]int{2, 0})
			Expect(g.LiveNeighborCount(0, 0)).To(BeZero())
		})
	})

	Describe("Tick", func() {
		It("keeps the board length", func() {
			g, err := life.New(40, 80, rand.New(rand.NewSource(11)))
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 10; i++ {
				g.Tick()
				Expect(g.Cells()).To(HaveLen(40 * 80))
			}
		})

		It("oscillates a blinker with period two", func() {
			vertical := board(6, 6, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3})
			horizontal := board(6, 6, [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4})

			g := vertical.Clone()
			g.Tick()
			Expect(g.Equal(horizontal)).To(BeTrue(), g.String())
			g.Tick()
			Expect(g.Equal(vertical)).To(BeTrue(), g.String())
		})

		It("never creates life on an empty board", func() {
			g := board(9, 4)
			g.Tick()
			Expect(g.Population()).To(BeZero())
		})

		It("kills every cell of a full board", func() {
			g, err := life.Seed("random", 6, 6, 1, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Population()).To(Equal(36))
			g.Tick()
			Expect(g.Population()).To(BeZero())
		})

		It("leaves a block still life unchanged", func() {
			block := board(6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})
			g := block.Clone()
			g.Tick()
			Expect(g.Equal(block)).To(BeTrue())
			Expect(g.Hash()).To(Equal(block.Hash()))
		})
	})
})
