package plantcontrol

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Base", func() {
	var (
		mockCtrl *gomock.Controller
		hr       *MockHumanResources
		unit     *MockUnit
		base     *Base
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		hr = NewMockHumanResources(mockCtrl)
		unit = NewMockUnit(mockCtrl)
		hr.EXPECT().Unit().Return(unit).AnyTimes()
		unit.EXPECT().MaximumWorkersPossible().Return(10).AnyTimes()
		base = NewBase(hr)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should reprice and buy when the wage changes", func() {
		unit.EXPECT().NumberOfWorkers().Return(3)
		gomock.InOrder(
			hr.EXPECT().UpdateOfferPrices(int64(12)),
			hr.EXPECT().UpdateEmployeeWages(int64(12)),
			hr.EXPECT().Buy(int64(12)),
		)

		base.SetCurrentWage(12)

		Expect(base.CurrentWage()).To(Equal(int64(12)))
		Expect(base.MaxPrice("labor")).To(Equal(int64(12)))
	})

	It("should ignore a wage equal to the current one", func() {
		base.SetCurrentWage(0)
		Expect(base.CurrentWage()).To(BeZero())
	})

	It("should not buy when the unit is full", func() {
		unit.EXPECT().NumberOfWorkers().Return(10).AnyTimes()
		hr.EXPECT().UpdateOfferPrices(int64(7))
		hr.EXPECT().UpdateEmployeeWages(int64(7))

		base.SetCurrentWage(7)

		Expect(base.CanBuy()).To(BeFalse())
	})

	It("should cancel a standing quote when buying is disabled", func() {
		hr.EXPECT().HasQuote().Return(true)
		hr.EXPECT().CancelQuote()

		base.SetCanBuy(false)

		Expect(base.CanBuy()).To(BeFalse())
	})

	It("should unregister its listener exactly once", func() {
		composite := NewComposite(hr)
		unit.EXPECT().AddListener(composite)
		unit.EXPECT().RemoveListener(composite).Return(true).Times(1)

		base.Listen(composite)
		base.TurnOff()
		base.TurnOff()

		Expect(base.Active()).To(BeFalse())
	})
})
