package document

import (
	"fulfillment/internal/pkg/errs"
)

// ClientSnapshot is the frozen copy of the recipient's registry data taken at
// document creation. Later edits to the client registry never alter issued
// documents.
type ClientSnapshot struct {
	Name       string
	VATNumber  string
	TaxCode    string
	Address    string
	Town       string
	Province   string
	PostalCode string
	Phone      string
	Email      string
}

// Validate checks the snapshot carries the minimum header data.
func (s ClientSnapshot) Validate() error {
	if s.Name == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	return nil
}

// CompanySnapshot is the frozen copy of the issuing company's registry data
// taken at document creation.
type CompanySnapshot struct {
	Name       string
	VATNumber  string
	TaxCode    string
	Address    string
	Town       string
	Province   string
	PostalCode string
	Country    string
	Phone      string
}

// Validate checks the snapshot carries the minimum header data.
func (s CompanySnapshot) Validate() error {
	if s.Name == "" {
		return errs.NewValueIsRequiredError("company name")
	}
	return nil
}
