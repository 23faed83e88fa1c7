package plantcontrol

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type tagDecorator struct {
	*Decorator
	tag string
}

func tagging(tag string, order *[]string) DecoratorFunc {
	return func(inner Control) (Control, error) {
		*order = append(*order, tag)
		return &tagDecorator{Decorator: NewDecorator(inner), tag: tag}, nil
	}
}

var _ = Describe("Decorate", func() {
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

	It("should wrap in the given order", func() {
		var order []string
		outer, err := Decorate(composite, tagging("a", &order), tagging("b", &order))
		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal([]string{"a", "b"}))

		b := outer.(*tagDecorator)
		Expect(b.tag).To(Equal("b"))
		a := b.Inner().(*tagDecorator)
		Expect(a.tag).To(Equal("a"))
		Expect(a.Inner()).To(BeIdenticalTo(composite))
	})

	It("should pass unhandled calls through", func() {
		var order []string
		outer, err := Decorate(composite, tagging("a", &order))
		Expect(err).NotTo(HaveOccurred())

		targeter.EXPECT().SetTarget(6)
		targeter.EXPECT().Target().Return(6)
		outer.SetTarget(6)
		Expect(outer.Target()).To(Equal(6))
	})

	It("should return the base without decorators", func() {
		outer, err := Decorate(composite)
		Expect(err).NotTo(HaveOccurred())
		Expect(outer).To(BeIdenticalTo(composite))
	})

	It("should surface decorator failures", func() {
		targeter.EXPECT().TurnOff()
		maximizer.EXPECT().TurnOff()
		failing := func(Control) (Control, error) { return nil, ErrInconsistentConfiguration }
		_, err := Decorate(composite, failing)
		Expect(errors.Is(err, ErrInconsistentConfiguration)).To(BeTrue())

		nilDecorator := func(Control) (Control, error) { return nil, nil }
		_, err = Decorate(composite, nilDecorator)
		Expect(errors.Is(err, ErrInconsistentConfiguration)).To(BeTrue())
	})

	It("should turn off the decorators built before a failure", func() {
		targeter.EXPECT().TurnOff().Times(1)
		maximizer.EXPECT().TurnOff().Times(1)

		var order []string
		failing := func(Control) (Control, error) { return nil, errors.New("boom") }
		_, err := Decorate(composite, tagging("a", &order), failing)

		Expect(err).To(MatchError(ContainSubstring("decorator 1")))
		Expect(order).To(Equal([]string{"a"}))
		Expect(composite.Active()).To(BeFalse())
	})
})
