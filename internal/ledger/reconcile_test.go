package ledger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Recompute", func() {
	It("treats principal plus pen as the scraped principal", func() {
		rec := Recompute(Record{
			Principal: d("1000"),
			Pen:       d("50"),
		})

		Expect(rec.PrincipalVariance).To(BeComparableTo(d("1050")))
		Expect(rec.PrincipalRemarks).To(Equal("Not Updated"))
	})

	It("flags unrecorded passbook entries per measure", func() {
		rec := Recompute(Record{
			Principal: d("1000"),
			Pen:       d("50"),
			CBU:       d("500"),
		})

		Expect(rec.PrincipalRemarks).To(Equal("Not Updated"))
		Expect(rec.CBURemarks).To(Equal("Not Updated"))
		Expect(rec.CBUWithdrawRemarks).To(Equal(""))
	})

	It("clears remarks when scraped and passbook match exactly", func() {
		rec := Recompute(Record{
			Principal:         d("1000"),
			Pen:               d("50"),
			PrincipalPassBook: d("1050"),
		})

		Expect(rec.PrincipalVariance.IsZero()).To(BeTrue())
		Expect(rec.PrincipalRemarks).To(Equal(""))
	})

	It("flags passbook entries the page never showed as Unremitted", func() {
		rec := Recompute(Record{
			CBUPassBook: d("200"),
		})

		Expect(rec.CBUVariance).To(BeComparableTo(d("-200")))
		Expect(rec.CBURemarks).To(Equal("Unremitted"))
	})

	It("flags a larger passbook value as Understated", func() {
		rec := Recompute(Record{
			Principal:         d("1000"),
			Pen:               d("50"),
			PrincipalPassBook: d("1200"),
		})

		Expect(rec.PrincipalVariance).To(BeComparableTo(d("-150")))
		Expect(rec.PrincipalRemarks).To(Equal("Understated"))
	})

	It("flags a smaller passbook value as Overstated", func() {
		rec := Recompute(Record{
			CBU:         d("500"),
			CBUPassBook: d("300"),
		})

		Expect(rec.CBUVariance).To(BeComparableTo(d("200")))
		Expect(rec.CBURemarks).To(Equal("Overstated"))
	})

	It("reconciles the CBU withdraw measure independently", func() {
		rec := Recompute(Record{
			CBUWithdraw:         d("100"),
			CBUWithdrawPassBook: d("100"),
			Principal:           d("10"),
		})

		Expect(rec.CBUWithdrawRemarks).To(Equal(""))
		Expect(rec.PrincipalRemarks).To(Equal("Not Updated"))
	})

	It("leaves an all-zero record reconciled", func() {
		rec := Recompute(Record{})

		Expect(rec.PrincipalRemarks).To(Equal(""))
		Expect(rec.CBURemarks).To(Equal(""))
		Expect(rec.CBUWithdrawRemarks).To(Equal(""))
	})

	It("is idempotent", func() {
		rec := Recompute(Record{
			Principal:         d("1000"),
			Pen:               d("50"),
			PrincipalPassBook: d("1200"),
		})
		again := Recompute(rec)

		Expect(again).To(BeComparableTo(rec))
	})

	It("does not modify its input", func() {
		in := Record{Principal: d("1000")}
		Recompute(in)

		Expect(in.PrincipalVariance.IsZero()).To(BeTrue())
		Expect(in.PrincipalRemarks).To(Equal(""))
	})
})

var _ = Describe("RenderValue", func() {
	DescribeTable("formats variances for display",
		func(v decimal.Decimal, want string) {
			Expect(RenderValue(v)).To(Equal(want))
		},
		Entry("positive", d("150"), "150.00"),
		Entry("positive with cents", d("10.5"), "10.50"),
		Entry("zero", decimal.Zero, "0.00"),
		Entry("negative in accounting parentheses", d("-150"), "(150.00)"),
		Entry("small negative", d("-0.05"), "(0.05)"),
	)
})
