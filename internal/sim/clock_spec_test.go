package sim_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

var _ = Describe("Clock", func() {
	var (
		clock *sim.Clock
		heavy *physics.Body
		light *physics.Body
	)

	BeforeEach(func() {
		heavy = physics.MustBody(10, dynamo.V(0, 0), dynamo.Zero(), physics.Named("heavy"))
		light = physics.MustBody(5, dynamo.V(0.3, 0), dynamo.Zero(), physics.Named("light"))

		var err error
		clock, err = sim.New(physics.NewScene(heavy, light), nil, sim.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("a firing", func() {
		It("merges, compacts and counts the tick", func() {
			Expect(clock.Step()).To(BeTrue())

			frame := clock.Snapshot()
			Expect(frame.Tick).To(Equal(uint64(1)))
			Expect(frame.Bodies).To(HaveLen(1))
			Expect(frame.Bodies[0].Name).To(Equal("heavy"))
			Expect(frame.Bodies[0].Mass).To(BeNumerically("==", 15))
			Expect(frame.Last.Merges).To(Equal(1))
			Expect(frame.Last.Removed).To(Equal(1))
		})

		It("conserves total mass across the merge", func() {
			before := clock.Snapshot().Stats.TotalMass
			clock.Step()
			Expect(clock.Snapshot().Stats.TotalMass).To(BeNumerically("~", before, 1e-12))
		})
	})

	Context("when paused", func() {
		BeforeEach(func() {
			clock.SetPaused(true)
			clock.SetPaused(true)
		})

		It("skips ticks without touching the scene", func() {
			Expect(clock.Step()).To(BeFalse())
			frame := clock.Snapshot()
			Expect(frame.Tick).To(BeZero())
			Expect(frame.Bodies).To(HaveLen(2))
		})

		It("resumes exactly where it stopped", func() {
			clock.Step()
			clock.SetPaused(false)
			Expect(clock.Step()).To(BeTrue())
			Expect(clock.TickCount()).To(Equal(uint64(1)))
		})
	})

	Context("with a negative time scale", func() {
		It("clamps to zero", func() {
			clock.SetTimeScale(-3)
			Expect(clock.TimeScale()).To(BeZero())
		})
	})

	Context("when run on a ticker", func() {
		It("ticks until the context is cancelled", func() {
			fast, err := sim.New(physics.NewScene(
				physics.MustBody(1, dynamo.V(500, 0), dynamo.Zero()),
				physics.MustBody(1, dynamo.V(-500, 0), dynamo.Zero()),
			), nil, sim.Config{Interval: time.Millisecond, TimeScale: 1})
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				Expect(fast.Run(ctx)).To(MatchError(context.Canceled))
			}()

			Eventually(fast.TickCount).Should(BeNumerically(">=", 3))

			frame := fast.Snapshot()
			Expect(frame.Bodies).To(HaveLen(2))

			cancel()
			wg.Wait()
		})
	})
})
