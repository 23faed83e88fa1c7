package plantcontrol

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/san-kum/plantctl/internal/plant"
)

var _ = Describe("Composite", func() {
	var (
		mockCtrl  *gomock.Controller
		hr        *MockHumanResources
		unit      *MockUnit
		targeter  *MockTargeter
		maximizer *MockMaximizer
		composite *Composite
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		hr = NewMockHumanResources(mockCtrl)
		unit = NewMockUnit(mockCtrl)
		targeter = NewMockTargeter(mockCtrl)
		maximizer = NewMockMaximizer(mockCtrl)
		hr.EXPECT().Unit().Return(unit).AnyTimes()

		composite = NewComposite(hr)
		Expect(composite.Bind(targeter, maximizer)).To(Succeed())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should refuse to bind twice", func() {
		err := composite.Bind(targeter, maximizer)
		Expect(errors.Is(err, ErrInconsistentConfiguration)).To(BeTrue())
	})

	It("should refuse a missing loop", func() {
		err := NewComposite(hr).Bind(targeter, nil)
		Expect(errors.Is(err, ErrInconsistentConfiguration)).To(BeTrue())
	})

	It("should start the targeter before the maximizer", func() {
		gomock.InOrder(
			targeter.EXPECT().Start(),
			maximizer.EXPECT().Start(),
		)
		composite.Start()
	})

	It("should forward unit events targeter first", func() {
		m := plant.Machinery{MinWorkers: 1, MaxWorkers: 5}
		gomock.InOrder(
			targeter.EXPECT().ChangeInWorkforceEvent(unit, 3, 2),
			maximizer.EXPECT().ChangeInWorkforceEvent(unit, 3, 2),
			targeter.EXPECT().ChangeInWageEvent(unit, 3, int64(9)),
			maximizer.EXPECT().ChangeInWageEvent(unit, 3, int64(9)),
			targeter.EXPECT().ChangeInMachineryEvent(unit, m),
			maximizer.EXPECT().ChangeInMachineryEvent(unit, m),
			targeter.EXPECT().PlantShutdownEvent(unit),
			maximizer.EXPECT().PlantShutdownEvent(unit),
		)

		composite.ChangeInWorkforceEvent(unit, 3, 2)
		composite.ChangeInWageEvent(unit, 3, 9)
		composite.ChangeInMachineryEvent(unit, m)
		composite.PlantShutdownEvent(unit)
	})

	It("should turn off before any loops are bound", func() {
		unbound := NewComposite(hr)

		Expect(unbound.TurnOff).NotTo(Panic())
		Expect(unbound.Active()).To(BeFalse())
	})

	It("should send targets to the targeter only", func() {
		targeter.EXPECT().SetTarget(4)
		targeter.EXPECT().Target().Return(4)

		composite.SetTarget(4)
		Expect(composite.Target()).To(Equal(4))
	})

	It("should turn everything off once", func() {
		targeter.EXPECT().TurnOff().Times(1)
		maximizer.EXPECT().TurnOff().Times(1)

		composite.TurnOff()
		composite.TurnOff()
		composite.Start()
	})

	It("should rate the level by the buying flag", func() {
		unit.EXPECT().NumberOfWorkers().Return(2).AnyTimes()
		unit.EXPECT().MaximumWorkersPossible().Return(5).AnyTimes()
		Expect(composite.RateCurrentLevel()).To(Equal(Acceptable))

		hr.EXPECT().HasQuote().Return(false)
		composite.SetCanBuy(false)
		Expect(composite.RateCurrentLevel()).To(Equal(Danger))
	})
})
