package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seo-analyst-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

type fakeResult struct {
	rowsAffected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

// fakeConn captura o SQL e os argumentos enviados ao banco
type fakeConn struct {
	execSQL      string
	execArgs     []interface{}
	execErr      error
	rowsAffected int64
}

var _ postgres.Conn = (*fakeConn)(nil)

func (c *fakeConn) Exec(query string, args ...interface{}) (sql.Result, error) {
	c.execSQL = query
	c.execArgs = args
	if c.execErr != nil {
		return nil, c.execErr
	}
	return fakeResult{rowsAffected: c.rowsAffected}, nil
}

func (c *fakeConn) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("não usado neste teste")
}

func (c *fakeConn) QueryRow(query string, args ...interface{}) *sql.Row {
	return nil
}

func (c *fakeConn) Close() error                 { return nil }
func (c *fakeConn) Ping(_ context.Context) error { return nil }

func testSession() *domain.Session {
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Session{
		ID:           "sess_test",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenExpiry:  created.Add(time.Hour),
		CreatedAt:    created,
		ExpiresAt:    created.Add(24 * time.Hour),
	}
}

func TestSessionRepository_Save(t *testing.T) {
	conn := &fakeConn{}
	repo := NewSessionRepository(conn)

	session := testSession()
	require.NoError(t, repo.Save(session))

	assert.Equal(t,
		"INSERT INTO sessions (id,access_token,refresh_token,token_expiry,created_at,expires_at) VALUES ($1,$2,$3,$4,$5,$6)",
		conn.execSQL,
	)
	assert.Equal(t, []interface{}{
		session.ID,
		session.AccessToken,
		session.RefreshToken,
		session.TokenExpiry,
		session.CreatedAt,
		session.ExpiresAt,
	}, conn.execArgs)
}

func TestSessionRepository_UpdateAccessToken(t *testing.T) {
	conn := &fakeConn{}
	repo := NewSessionRepository(conn)

	expiry := time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateAccessToken("sess_test", "token-novo", expiry))

	assert.Equal(t,
		"UPDATE sessions SET access_token = $1, token_expiry = $2 WHERE id = $3",
		conn.execSQL,
	)
	assert.Equal(t, []interface{}{"token-novo", expiry, "sess_test"}, conn.execArgs)
}

func TestSessionRepository_Delete(t *testing.T) {
	conn := &fakeConn{}
	repo := NewSessionRepository(conn)

	require.NoError(t, repo.Delete("sess_test"))

	assert.Equal(t, "DELETE FROM sessions WHERE id = $1", conn.execSQL)
	assert.Equal(t, []interface{}{"sess_test"}, conn.execArgs)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	now := time.Date(2024, 6, 2, 3, 0, 0, 0, time.UTC)
	conn := &fakeConn{rowsAffected: 7}
	repo := NewSessionRepository(conn)

	removed, err := repo.DeleteExpired(now)
	require.NoError(t, err)

	assert.Equal(t, int64(7), removed)
	assert.Equal(t, "DELETE FROM sessions WHERE expires_at < $1", conn.execSQL)
	assert.Equal(t, []interface{}{now}, conn.execArgs)
}

func TestSessionRepository_ExecError(t *testing.T) {
	conn := &fakeConn{execErr: errors.New("conexão perdida")}
	repo := NewSessionRepository(conn)

	assert.Error(t, repo.Save(testSession()))
	assert.Error(t, repo.Delete("sess_test"))

	_, err := repo.DeleteExpired(time.Now())
	assert.Error(t, err)
}
