package repository

import (
	"context"
	"database/sql"
)

// InquiryRepo handles contact messages.
type InquiryRepo struct {
	db *sql.DB
}

func NewInquiryRepo(db *sql.DB) *InquiryRepo { return &InquiryRepo{db: db} }

func (r *InquiryRepo) Insert(ctx context.Context, q Inquiry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO inquiries(id, name, email, phone, message, created_at)
	VALUES(?, ?, ?, ?, ?, ?);
	`, q.ID, q.Name, q.Email, q.Phone, q.Message, q.CreatedAt)
	return err
}

func (r *InquiryRepo) List(ctx context.Context) ([]Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, email, phone, message, created_at FROM inquiries ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Inquiry
	for rows.Next() {
		var q Inquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Message, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
