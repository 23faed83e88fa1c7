package plantcontrol

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("MatchBest", func() {
	var (
		mockCtrl  *gomock.Controller
		hr        *MockHumanResources
		unit      *MockUnit
		market    *MockMarket
		targeter  *MockTargeter
		maximizer *MockMaximizer
		composite *Composite
		buys      []int64
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		hr = NewMockHumanResources(mockCtrl)
		unit = NewMockUnit(mockCtrl)
		market = NewMockMarket(mockCtrl)
		targeter = NewMockTargeter(mockCtrl)
		maximizer = NewMockMaximizer(mockCtrl)
		buys = nil

		hr.EXPECT().Unit().Return(unit).AnyTimes()
		hr.EXPECT().Market().Return(market).AnyTimes()
		hr.EXPECT().FirmID().Return("us").AnyTimes()
		hr.EXPECT().HasQuote().Return(true).AnyTimes()
		hr.EXPECT().CancelQuote().AnyTimes()
		hr.EXPECT().UpdateOfferPrices(gomock.Any()).AnyTimes()
		hr.EXPECT().UpdateEmployeeWages(gomock.Any()).AnyTimes()
		hr.EXPECT().Buy(gomock.Any()).Do(func(w int64) { buys = append(buys, w) }).AnyTimes()
		unit.EXPECT().NumberOfWorkers().Return(0).AnyTimes()
		unit.EXPECT().MaximumWorkersPossible().Return(10).AnyTimes()

		composite = NewComposite(hr)
		Expect(composite.Bind(targeter, maximizer)).To(Succeed())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should require a fixed pay structure", func() {
		hr.EXPECT().FixedPayStructure().Return(false)
		_, err := NewMatchBest(composite)
		Expect(errors.Is(err, ErrInconsistentConfiguration)).To(BeTrue())
	})

	It("should require a visible best bid", func() {
		hr.EXPECT().FixedPayStructure().Return(true)
		market.EXPECT().BestBidVisible().Return(false)
		_, err := NewMatchBest(composite)
		Expect(errors.Is(err, ErrInconsistentConfiguration)).To(BeTrue())
	})

	Context("when wired", func() {
		var m *MatchBest

		BeforeEach(func() {
			hr.EXPECT().FixedPayStructure().Return(true)
			market.EXPECT().BestBidVisible().Return(true)
			market.EXPECT().AddBidListener(gomock.Any())
			var err error
			m, err = NewMatchBest(composite)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should pass its own wage through when nobody bids more", func() {
			m.SetCurrentWage(10)
			Expect(composite.CurrentWage()).To(Equal(int64(10)))
			Expect(buys).To(Equal([]int64{10}))
		})

		It("should match a better competitor bid and stop buying", func() {
			m.SetCurrentWage(10)
			market.EXPECT().BestBid().Return(int64(15), "them", true)

			m.NewBidEvent("them", 15)

			Expect(m.BestMarketOffer()).To(Equal(int64(15)))
			Expect(composite.CurrentWage()).To(Equal(int64(15)))
			Expect(composite.CanBuy()).To(BeFalse())
			Expect(buys).To(Equal([]int64{10}))
		})

		It("should restore buying once its own offer is best again", func() {
			m.SetCurrentWage(10)
			market.EXPECT().BestBid().Return(int64(15), "them", true)
			m.NewBidEvent("them", 15)

			m.SetCurrentWage(20)

			Expect(composite.CurrentWage()).To(Equal(int64(20)))
			Expect(composite.CanBuy()).To(BeTrue())
			Expect(buys).To(Equal([]int64{10, 20}))
		})

		It("should not copy its own bid", func() {
			m.SetCurrentWage(10)
			market.EXPECT().BestBid().Return(int64(10), "us", true)
			m.NewBidEvent("us", 10)
			Expect(m.BestMarketOffer()).To(Equal(int64(-1)))
		})

		It("should stop listening when turned off", func() {
			market.EXPECT().RemoveBidListener(m).Return(true)
			targeter.EXPECT().TurnOff()
			maximizer.EXPECT().TurnOff()

			m.TurnOff()
			m.NewBidEvent("them", 99)
			Expect(m.BestMarketOffer()).To(Equal(int64(-1)))
		})
	})
})
