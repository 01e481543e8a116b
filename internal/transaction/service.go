package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("transaction not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Amount      int64
	Currency    string
	Type        Type
	Description string
	CategoryID  *uuid.UUID
	SplitType   *string
	Date        Date
}

type ListFilter struct {
	Type      *Type
	StartDate *Date
	EndDate   *Date
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if !params.Type.Valid() {
		return nil, fmt.Errorf("invalid transaction type %q", params.Type)
	}

	if params.Amount < 0 {
		return nil, fmt.Errorf("amount must be non-negative, got %d", params.Amount)
	}

	tx := &Transaction{
		Amount:      params.Amount,
		Currency:    params.Currency,
		Type:        params.Type,
		Description: params.Description,
		CategoryID:  params.CategoryID,
		SplitType:   params.SplitType,
		Date:        params.Date,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// CreateBatch persists a parsed statement in one shot. Rows with an invalid
// type are rejected up front so a bad import never half-lands.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i, p := range params {
		if !p.Type.Valid() {
			return nil, fmt.Errorf("row %d: invalid transaction type %q", i, p.Type)
		}
	}

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			Amount:      p.Amount,
			Currency:    p.Currency,
			Type:        p.Type,
			Description: p.Description,
			CategoryID:  p.CategoryID,
			SplitType:   p.SplitType,
			Date:        p.Date,
		}
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	return txs, nil
}
