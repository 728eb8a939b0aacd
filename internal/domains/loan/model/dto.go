package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/shared"
)

// CreateLoanRequest - POST /loans. The customer string doubles as the
// notification address for overdue reminders.
type CreateLoanRequest struct {
	ISBN     string `json:"isbn"`
	Customer string `json:"customer"`
}

func (r CreateLoanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required")),
		validation.Field(&r.Customer, validation.Required.Error("customer is required")),
	)
}

// ReturnLoanRequest - PATCH /loans/:id
type ReturnLoanRequest struct {
	Returned *bool `json:"returned"`
}

func (r ReturnLoanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Returned, validation.NotNil.Error("returned is required")),
	)
}

// LoanFilter - GET /loans query. The two fields combine with OR, not AND:
// a loan matches when its book has the given isbn or its customer equals the
// given customer. Supplying both therefore broadens the result set.
type LoanFilter struct {
	ISBN     string
	Customer string
}

// LoanResponse is the external shape of a loan.
type LoanResponse struct {
	ID       uuid.UUID               `json:"id"`
	Customer string                  `json:"customer"`
	LoanDate string                  `json:"loan_date"`
	Returned *bool                   `json:"returned"`
	Book     *bookmodel.BookResponse `json:"book,omitempty"`
}

func ToLoanResponse(l Loan) LoanResponse {
	resp := LoanResponse{
		ID:       l.ID,
		Customer: l.Customer,
		LoanDate: l.LoanDate.Format(time.DateOnly),
		Returned: l.Returned,
	}
	if l.Book != nil {
		book := bookmodel.ToBookResponse(*l.Book)
		resp.Book = &book
	}
	return resp
}

func ToLoanResponses(loans []Loan) []LoanResponse {
	out := make([]LoanResponse, len(loans))
	for i, l := range loans {
		out[i] = ToLoanResponse(l)
	}
	return out
}

// LoansPageResponse pairs a page of loans with its metadata.
type LoansPageResponse struct {
	Loans      []LoanResponse  `json:"loans"`
	Pagination shared.PageMeta `json:"pagination"`
}
