package repo

import (
	"context"

	"skyline/internal/domain"
	"skyline/internal/infra"
	"skyline/internal/sqlinline"
)

// InquiryRepositoryPG implements domain.InquiryRepository using PostgreSQL.
type InquiryRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewInquiryRepository constructs the repository.
func NewInquiryRepository(sql infra.SQLExecutor) *InquiryRepositoryPG {
	return &InquiryRepositoryPG{sql: sql}
}

func (r *InquiryRepositoryPG) Create(ctx context.Context, in *domain.ContactInquiry) error {
	if in.Type == "" {
		in.Type = domain.InquiryGeneral
	}
	if in.Status == "" {
		in.Status = domain.InquiryNew
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertInquiry,
		in.Name, in.Email, in.Phone, in.Subject, in.Message,
		string(in.Type), string(in.Status), in.IPAddress, in.UserAgent, in.Country,
	)
	return row.Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
}

func (r *InquiryRepositoryPG) List(ctx context.Context, status domain.InquiryStatus, limit, offset int) ([]domain.ContactInquiry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListInquiries, string(status), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.ContactInquiry
	for rows.Next() {
		var in domain.ContactInquiry
		if err := rows.Scan(
			&in.ID, &in.Name, &in.Email, &in.Phone, &in.Subject, &in.Message,
			&in.Type, &in.Status, &in.IPAddress, &in.UserAgent, &in.Country,
			&in.CreatedAt, &in.UpdatedAt,
		); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, in)
	}
	return inquiries, rows.Err()
}

func (r *InquiryRepositoryPG) UpdateStatus(ctx context.Context, id int64, status domain.InquiryStatus) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateInquiryStatus, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.InquiryRepository = (*InquiryRepositoryPG)(nil)
