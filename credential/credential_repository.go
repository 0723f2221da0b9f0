package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores credentials with the password and phone number
// encrypted. Callers only ever see decrypted values.
type Repository struct {
	pool   *pgxpool.Pool
	cipher *Cipher
}

func NewRepository(pool *pgxpool.Pool, cipher *Cipher) *Repository {
	return &Repository{pool: pool, cipher: cipher}
}

func (r *Repository) GetByIdentity(ctx context.Context, email string) (Credential, error) {
	sql := `
			SELECT email, password_enc, phone_enc, playtime_duration_minutes
			FROM credentials
			WHERE email=$1;
		`

	return r.scanOne(ctx, sql, strings.ToLower(strings.TrimSpace(email)))
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (Credential, error) {
	sql := `
			SELECT email, password_enc, phone_enc, playtime_duration_minutes
			FROM credentials
			WHERE phone_hash=$1;
		`

	return r.scanOne(ctx, sql, r.cipher.PhoneHash(phone))
}

func (r *Repository) scanOne(ctx context.Context, sql string, arg string) (Credential, error) {
	var (
		cred        Credential
		passwordEnc string
		phoneEnc    string
	)

	err := r.pool.QueryRow(ctx, sql, arg).Scan(&cred.Email, &passwordEnc, &phoneEnc, &cred.PlaytimeDurationMinutes)

	if errors.Is(err, pgx.ErrNoRows) {
		return Credential{}, ErrCredentialNotFound
	}

	if err != nil {
		return Credential{}, fmt.Errorf("failed to fetch credential: %w", err)
	}

	if cred.Password, err = r.cipher.Decrypt(passwordEnc); err != nil {
		return Credential{}, fmt.Errorf("failed to decrypt password for %v: %w", cred.Email, err)
	}

	if cred.PhoneNumber, err = r.cipher.Decrypt(phoneEnc); err != nil {
		return Credential{}, fmt.Errorf("failed to decrypt phone number for %v: %w", cred.Email, err)
	}

	return cred, nil
}

// Save inserts or replaces the credential for cred.Email.
func (r *Repository) Save(ctx context.Context, cred Credential) error {
	if err := cred.Validate(); err != nil {
		return err
	}

	passwordEnc, err := r.cipher.Encrypt(cred.Password)
	if err != nil {
		return fmt.Errorf("failed to encrypt password: %w", err)
	}

	phoneEnc, err := r.cipher.Encrypt(NormalizePhone(cred.PhoneNumber))
	if err != nil {
		return fmt.Errorf("failed to encrypt phone number: %w", err)
	}

	sql := `
		INSERT INTO credentials (email, password_enc, phone_enc, phone_hash, playtime_duration_minutes, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (email) DO UPDATE
		SET password_enc=EXCLUDED.password_enc,
			phone_enc=EXCLUDED.phone_enc,
			phone_hash=EXCLUDED.phone_hash,
			playtime_duration_minutes=EXCLUDED.playtime_duration_minutes,
			updated_at=now();
	`

	_, err = r.pool.Exec(ctx, sql,
		strings.ToLower(strings.TrimSpace(cred.Email)),
		passwordEnc,
		phoneEnc,
		r.cipher.PhoneHash(cred.PhoneNumber),
		cred.PlaytimeDurationMinutes,
	)

	if err != nil {
		return fmt.Errorf("failed to save credential for %v: %w", cred.Email, err)
	}

	return nil
}
