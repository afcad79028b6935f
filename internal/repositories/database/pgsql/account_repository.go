package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portsrepo "github.com/invopay/invoicing_backend/internal/core/ports/repositories"
	"github.com/invopay/invoicing_backend/internal/models"
	"github.com/invopay/invoicing_backend/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for bank account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, company_id, name, number, currency_code, is_default, enabled, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.CollectableRow) (models.Account, error) {
	var acc models.Account
	err := row.Scan(
		&acc.AccountID,
		&acc.CompanyID,
		&acc.Name,
		&acc.Number,
		&acc.CurrencyCode,
		&acc.IsDefault,
		&acc.Enabled,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	return acc, err
}

// SaveAccount persists a new account. At most one account per company can be
// the default; a new default demotes the previous one.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if modelAcc.IsDefault {
		demote := `
			UPDATE accounts
			SET is_default = FALSE, last_updated_at = $2, last_updated_by = $3
			WHERE company_id = $1 AND is_default = TRUE;
		`
		if _, err := tx.Exec(ctx, demote, modelAcc.CompanyID, modelAcc.LastUpdatedAt, modelAcc.LastUpdatedBy); err != nil {
			return fmt.Errorf("failed to demote previous default account: %w", err)
		}
	}

	query := `
		INSERT INTO accounts (account_id, company_id, name, number, currency_code, is_default, enabled, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err = tx.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.CompanyID,
		modelAcc.Name,
		modelAcc.Number,
		modelAcc.CurrencyCode,
		modelAcc.IsDefault,
		modelAcc.Enabled,
		modelAcc.CreatedAt,
		modelAcc.CreatedBy,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}

	return r.Commit(ctx, tx)
}

// FindAccountByID retrieves a specific account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelAcc, err := pgx.CollectOneRow(rows, scanAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccountsByCompany retrieves a company's accounts ordered by name.
func (r *PgxAccountRepository) ListAccountsByCompany(ctx context.Context, companyID string, enabledOnly bool) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE company_id = $1`
	if enabledOnly {
		query += ` AND enabled = TRUE`
	}
	query += `
		ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, scanAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// FindDefaultAccount retrieves the company's default deposit account.
func (r *PgxAccountRepository) FindDefaultAccount(ctx context.Context, companyID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE company_id = $1 AND is_default = TRUE AND enabled = TRUE;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query default account for company %s: %w", companyID, err)
	}
	defer rows.Close()

	modelAcc, err := pgx.CollectOneRow(rows, scanAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find default account for company %s: %w", companyID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}
