package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDocumentQueryHandler retrieves a full transport document from the
// database. Totals are summed from the lines, never read from a stored column.
type GetDocumentQueryHandler struct {
	db *gorm.DB
}

// NewGetDocumentQueryHandler creates a handler for document queries.
func NewGetDocumentQueryHandler(db *gorm.DB) GetDocumentQueryHandler {
	return GetDocumentQueryHandler{db: db}
}

// Handle executes the query to retrieve the document header, its party
// snapshots and its lines in line-number order.
func (h GetDocumentQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentQuery,
) (GetDocumentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDocumentQueryResponse{}, err
	}

	resp, err := h.readHeader(ctx, query.DocumentID())
	if err != nil {
		return GetDocumentQueryResponse{}, err
	}

	if err = h.readLines(ctx, &resp); err != nil {
		return GetDocumentQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDocumentQueryHandler) readHeader(
	ctx context.Context,
	documentID int64,
) (GetDocumentQueryResponse, error) {
	var resp GetDocumentQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence,
			issued_at,
			note,
			created_by,
			client_name, client_vat_number, client_tax_code, client_address,
			client_town, client_province, client_postal_code, client_phone,
			client_email,
			company_name, company_vat_number, company_tax_code, company_address,
			company_town, company_province, company_postal_code, company_country,
			company_phone
		FROM documents
		WHERE id = ?
	`, documentID).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return resp, err
		}
		return resp, errs.NewObjectNotFoundError("document id", documentID)
	}

	err = rows.Scan(
		&resp.ID,
		&resp.Sequence,
		&resp.IssuedAt,
		&resp.Note,
		&resp.CreatedBy,
		&resp.Client.Name, &resp.Client.VATNumber, &resp.Client.TaxCode,
		&resp.Client.Address, &resp.Client.Town, &resp.Client.Province,
		&resp.Client.PostalCode, &resp.Client.Phone, &resp.Client.Email,
		&resp.Company.Name, &resp.Company.VATNumber, &resp.Company.TaxCode,
		&resp.Company.Address, &resp.Company.Town, &resp.Company.Province,
		&resp.Company.PostalCode, &resp.Company.Country, &resp.Company.Phone,
	)
	if err != nil {
		return resp, err
	}

	return resp, rows.Err()
}

func (h GetDocumentQueryHandler) readLines(
	ctx context.Context,
	resp *GetDocumentQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			ticket_id,
			manual,
			article_id,
			description,
			weight,
			unit_net_price,
			vat_percentage,
			discount_percent,
			net_amount,
			vat_amount
		FROM document_lines
		WHERE document_id = ?
		ORDER BY number
	`, resp.ID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line DocumentLineResponse

		err = rows.Scan(
			&line.Number,
			&line.TicketID,
			&line.Manual,
			&line.ArticleID,
			&line.Description,
			&line.Weight,
			&line.UnitNetPrice,
			&line.VATPercentage,
			&line.DiscountPercent,
			&line.NetAmount,
			&line.VATAmount,
		)
		if err != nil {
			return err
		}
		line.GrossAmount = line.NetAmount.Add(line.VATAmount)

		resp.Lines = append(resp.Lines, line)
		resp.TotalNet = resp.TotalNet.Add(line.NetAmount)
		resp.TotalVAT = resp.TotalVAT.Add(line.VATAmount)
	}
	resp.TotalGross = resp.TotalNet.Add(resp.TotalVAT)

	return rows.Err()
}
