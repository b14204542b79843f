package ledger

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResultSet", func() {
	var rs *ResultSet

	BeforeEach(func() {
		rs = &ResultSet{}
	})

	Describe("Insert", func() {
		It("keeps records sorted by date ascending", func() {
			rs.Insert("a", map[Field]string{FieldDate: "01/15/2024"})
			rs.Insert("b", map[Field]string{FieldDate: "12/31/2023"})
			rs.Insert("c", map[Field]string{FieldDate: "01/10/2024"})

			Expect(rs.Records[0].RowID).To(Equal("b"))
			Expect(rs.Records[1].RowID).To(Equal("c"))
			Expect(rs.Records[2].RowID).To(Equal("a"))
		})

		It("accepts dashed and ISO date styles", func() {
			rs.Insert("a", map[Field]string{FieldDate: "2024-01-15"})
			rs.Insert("b", map[Field]string{FieldDate: "01-10-2024"})

			Expect(rs.Records[0].RowID).To(Equal("b"))
			Expect(rs.Records[1].RowID).To(Equal("a"))
		})

		It("orders unparseable dates after all parseable ones", func() {
			rs.Insert("a", map[Field]string{FieldDate: "April"})
			rs.Insert("b", map[Field]string{FieldDate: "01/10/2024"})
			rs.Insert("c", map[Field]string{FieldDate: ""})

			Expect(rs.Records[0].RowID).To(Equal("b"))
			Expect(rs.Records[1].RowID).To(Equal("a"))
			Expect(rs.Records[2].RowID).To(Equal("c"))
		})

		It("keeps insertion order for equal dates", func() {
			rs.Insert("first", map[Field]string{FieldDate: "01/10/2024"})
			rs.Insert("second", map[Field]string{FieldDate: "01/10/2024"})

			Expect(rs.Records[0].RowID).To(Equal("first"))
			Expect(rs.Records[1].RowID).To(Equal("second"))
		})

		It("reconciles the new record", func() {
			rec := rs.Insert("a", map[Field]string{
				FieldDate:      "01/10/2024",
				FieldPrincipal: "500",
			})

			Expect(rec.PrincipalVariance).To(BeComparableTo(d("500")))
			Expect(rec.PrincipalRemarks).To(Equal("Not Updated"))
		})
	})

	Describe("Find", func() {
		It("returns the record with the given row id", func() {
			rs.Insert("a", map[Field]string{FieldDate: "01/10/2024"})

			rec, err := rs.Find("a")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.RowID).To(Equal("a"))
		})

		It("returns ErrNotFound for unknown ids", func() {
			_, err := rs.Find("missing")
			Expect(err).To(MatchError(ErrNotFound))
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			rs.Insert("a", map[Field]string{
				FieldDate:      "01/10/2024",
				FieldPrincipal: "500",
			})
		})

		It("recomputes derived fields after a passbook edit", func() {
			rec, err := rs.Update("a", FieldPrincipalPassBook, "500")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.PrincipalVariance.IsZero()).To(BeTrue())
			Expect(rec.PrincipalRemarks).To(Equal(""))
		})

		It("does not resort after a date edit", func() {
			rs.Insert("b", map[Field]string{FieldDate: "02/10/2024"})

			_, err := rs.Update("b", FieldDate, "01/01/2024")
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.Records[0].RowID).To(Equal("a"))
			Expect(rs.Records[1].RowID).To(Equal("b"))
		})

		It("rejects non-numeric values for numeric fields", func() {
			_, err := rs.Update("a", FieldPrincipalPassBook, "lots")
			Expect(err).To(MatchError(ErrInvalidEdit))
		})

		It("leaves the record unchanged on a rejected edit", func() {
			_, err := rs.Update("a", FieldPrincipal, "lots")
			Expect(err).To(MatchError(ErrInvalidEdit))

			rec, _ := rs.Find("a")
			Expect(rec.Principal).To(BeComparableTo(d("500")))
			Expect(rec.PrincipalRemarks).To(Equal("Not Updated"))
		})

		It("resets a numeric field to zero on an empty value", func() {
			rec, err := rs.Update("a", FieldPrincipal, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Principal.IsZero()).To(BeTrue())
			Expect(rec.PrincipalRemarks).To(Equal(""))
		})

		It("returns ErrNotFound for unknown ids", func() {
			_, err := rs.Update("missing", FieldPrincipal, "1")
			Expect(err).To(MatchError(ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes only the named record", func() {
			rs.Insert("a", map[Field]string{FieldDate: "01/10/2024"})
			rs.Insert("b", map[Field]string{FieldDate: "01/15/2024"})

			Expect(rs.Delete("a")).To(Succeed())
			Expect(rs.Records).To(HaveLen(1))
			Expect(rs.Records[0].RowID).To(Equal("b"))
		})

		It("returns ErrNotFound for unknown ids", func() {
			Expect(rs.Delete("missing")).To(MatchError(ErrNotFound))
		})
	})
})
