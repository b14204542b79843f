package ledger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MapHeader", func() {
	DescribeTable("maps loose header spellings to canonical fields",
		func(raw string, want Field) {
			f, ok := MapHeader(raw)
			Expect(ok).To(BeTrue())
			Expect(f).To(Equal(want))
		},
		Entry("exact receipt header", "Receipt No", FieldReceiptNo),
		Entry("receipt with dot", "Receipt No.", FieldReceiptNo),
		Entry("official receipt number", "OR No", FieldReceiptNo),
		Entry("reference", "Reference", FieldReceiptNo),
		Entry("transaction id", "Transaction ID", FieldReceiptNo),
		Entry("date", "DATE", FieldDate),
		Entry("principal", "Principal", FieldPrincipal),
		Entry("principal in Filipino", "Pokok", FieldPrincipal),
		Entry("penalty", "Penalty", FieldPen),
		Entry("short pen", "pen", FieldPen),
		Entry("cbu", "CBU", FieldCBU),
		Entry("cbu withdraw", "CBU Withdraw", FieldCBUWithdraw),
		Entry("withdrawal", "CBU Withdrawal", FieldCBUWithdraw),
		Entry("collector", "Collector", FieldCollector),
		Entry("passbook with underscore", "Principal_PassBook", FieldPrincipalPassBook),
		Entry("passbook with space", "Principal PassBook", FieldPrincipalPassBook),
		Entry("passbook with doubled spaces", "CBU  Passbook", FieldCBUPassBook),
		Entry("variance", "CBU_Variance", FieldCBUVariance),
		Entry("withdraw remarks", "CBU withdraw Remarks", FieldCBUWithdrawRemarks),
	)

	It("treats underscore and space spellings the same", func() {
		a, okA := MapHeader("cbu_passbook")
		b, okB := MapHeader("CBU PassBook")
		Expect(okA).To(BeTrue())
		Expect(okB).To(BeTrue())
		Expect(a).To(Equal(b))
	})

	It("ignores surrounding whitespace and case", func() {
		f, ok := MapHeader("  rEcEiPt   nO  ")
		Expect(ok).To(BeTrue())
		Expect(f).To(Equal(FieldReceiptNo))
	})

	It("rejects unrelated headers", func() {
		_, ok := MapHeader("Favorite Color")
		Expect(ok).To(BeFalse())
	})

	It("rejects empty headers", func() {
		_, ok := MapHeader("   ")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ParseField", func() {
	It("accepts canonical names", func() {
		f, err := ParseField("Principal_PassBook")
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(FieldPrincipalPassBook))
	})

	It("accepts the same loose spellings as headers", func() {
		f, err := ParseField("receipt number")
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(FieldReceiptNo))
	})

	It("returns ErrInvalidEdit for unknown names", func() {
		_, err := ParseField("bogus")
		Expect(err).To(MatchError(ErrInvalidEdit))
	})
})
