package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/sim"
)

type snapshot struct {
	present      bool
	head, length int
}

func snap(s *sim.Simulator) []snapshot {
	out := make([]snapshot, len(s.Slots()))
	for c, st := range s.Slots() {
		if st != nil {
			out[c] = snapshot{true, st.Head, st.Length}
		}
	}
	return out
}

func params(density, spawns, length int) control.State {
	s := control.Default()
	s.DensityPct = density
	s.MaxSpawns = spawns
	s.MaxLength = length
	return s
}

var _ = Describe("Simulator", func() {
	const rows, cols = 20, 30

	var s *sim.Simulator

	BeforeEach(func() {
		s = sim.New(sim.NewSource(42), rows, cols)
	})

	It("moves every surviving stream down exactly one row per tick", func() {
		ctl := params(35, 6, 12)
		prev := snap(s)
		for tick := 0; tick < 400; tick++ {
			s.Advance(ctl)
			cur := snap(s)
			for c := range cur {
				p := prev[c]
				survives := p.present && p.head+1-p.length < rows
				if survives {
					Expect(cur[c]).To(Equal(snapshot{true, p.head + 1, p.length}), "column %d tick %d", c, tick)
				} else if cur[c].present {
					Expect(cur[c].head).To(Equal(0), "new stream in column %d tick %d", c, tick)
				}
			}
			prev = cur
		}
	})

	It("never keeps a stream whose trail has left the screen", func() {
		ctl := params(80, 10, 25)
		for tick := 0; tick < 300; tick++ {
			s.Advance(ctl)
			for _, st := range s.Slots() {
				if st != nil {
					Expect(st.Head - st.Length).To(BeNumerically("<", rows))
				}
			}
		}
	})

	It("keeps one slot per column with matching column indices", func() {
		ctl := params(100, cols, 8)
		for tick := 0; tick < 50; tick++ {
			s.Advance(ctl)
			Expect(s.Slots()).To(HaveLen(cols))
			for c, st := range s.Slots() {
				if st != nil {
					Expect(st.Col).To(Equal(c))
				}
			}
		}
	})

	It("never starts more than the spawn cap in one tick", func() {
		for _, k := range []int{1, 3, 7} {
			ctl := params(100, k, 4)
			s = sim.New(sim.NewSource(int64(k)), rows, cols)
			for tick := 0; tick < 100; tick++ {
				before := snap(s)
				stats := s.Advance(ctl)
				Expect(stats.Spawned).To(BeNumerically("<=", k))

				fresh := 0
				for c, st := range s.Slots() {
					continuing := before[c].present && before[c].head+1-before[c].length < rows
					if st != nil && !continuing {
						fresh++
					}
				}
				Expect(fresh).To(Equal(stats.Spawned))
			}
		}
	})

	It("goes empty and stays empty at zero density", func() {
		s.Advance(params(100, cols, 10))
		Expect(s.Active()).To(BeNumerically(">", 0))

		idle := params(0, cols, 10)
		for tick := 0; tick < rows+11; tick++ {
			Expect(s.Advance(idle).Spawned).To(BeZero())
		}
		Expect(s.Active()).To(BeZero())
		for tick := 0; tick < 100; tick++ {
			s.Advance(idle)
			Expect(s.Active()).To(BeZero())
		}
	})

	It("fills every empty column each tick at full density with a large cap", func() {
		ctl := params(100, cols, 6)
		for tick := 0; tick < 60; tick++ {
			s.Advance(ctl)
			Expect(s.Active()).To(Equal(cols))
		}
	})

	It("can spawn in columns that were shrunk away and regrown", func() {
		ctl := params(100, cols, 6)
		s.Advance(ctl)
		s.Resize(rows, 5)
		Expect(s.Active()).To(Equal(5))

		s.Resize(rows, cols)
		s.Advance(ctl)
		Expect(s.Active()).To(Equal(cols))
	})

	It("starts exactly four streams at row zero with a cap of four", func() {
		s = sim.New(sim.NewSource(9), rows, 10)
		stats := s.Advance(params(100, 4, 30))
		Expect(stats.Spawned).To(Equal(4))

		atTop := 0
		for _, st := range s.Slots() {
			if st != nil {
				Expect(st.Head).To(Equal(0))
				atTop++
			}
		}
		Expect(atTop).To(Equal(4))
	})

	It("draws lengths within 1..MaxLength", func() {
		ctl := params(100, cols, 7)
		for tick := 0; tick < 100; tick++ {
			s.Advance(ctl)
			for _, st := range s.Slots() {
				if st != nil {
					Expect(st.Length).To(BeNumerically(">=", 1))
					Expect(st.Length).To(BeNumerically("<=", 7))
					Expect(st.Glyphs).To(HaveLen(st.Length + 1))
				}
			}
		}
	})
})
