package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/seo-analyst-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

const sessionsTable = "sessions"

type SessionRepository interface {
	Save(session *domain.Session) error
	GetByID(sessionID string) (*domain.Session, error)
	UpdateAccessToken(sessionID, accessToken string, tokenExpiry time.Time) error
	Delete(sessionID string) error
	DeleteExpired(now time.Time) (int64, error)
}

type sessionRepository struct {
	conn postgres.Conn
}

func NewSessionRepository(conn postgres.Conn) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (s *sessionRepository) Save(session *domain.Session) error {
	saveSQL, saveArgs, err := squirrel.
		Insert(sessionsTable).
		Columns("id", "access_token", "refresh_token", "token_expiry", "created_at", "expires_at").
		Values(
			session.ID,
			session.AccessToken,
			session.RefreshToken,
			session.TokenExpiry,
			session.CreatedAt,
			session.ExpiresAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(saveSQL, saveArgs...)
	return err
}

func (s *sessionRepository) GetByID(sessionID string) (*domain.Session, error) {
	getSQL, getArgs, err := squirrel.
		Select("id", "access_token", "refresh_token", "token_expiry", "created_at", "expires_at").
		From(sessionsTable).
		Where(squirrel.Eq{"id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := s.conn.QueryRow(getSQL, getArgs...)

	session := &domain.Session{}
	if err := row.Scan(
		&session.ID,
		&session.AccessToken,
		&session.RefreshToken,
		&session.TokenExpiry,
		&session.CreatedAt,
		&session.ExpiresAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return session, nil
}

func (s *sessionRepository) UpdateAccessToken(sessionID, accessToken string, tokenExpiry time.Time) error {
	updateSQL, updateArgs, err := squirrel.
		Update(sessionsTable).
		Set("access_token", accessToken).
		Set("token_expiry", tokenExpiry).
		Where(squirrel.Eq{"id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(updateSQL, updateArgs...)
	return err
}

func (s *sessionRepository) Delete(sessionID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(sessionsTable).
		Where(squirrel.Eq{"id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(deleteSQL, deleteArgs...)
	return err
}

func (s *sessionRepository) DeleteExpired(now time.Time) (int64, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(sessionsTable).
		Where(squirrel.Lt{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := s.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
