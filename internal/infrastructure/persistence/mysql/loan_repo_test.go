package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmdm/library/internal/domain/loan"
)

// TestLoanRepoCreate 测试创建借阅并回填ID
func TestLoanRepoCreate(t *testing.T) {
	repo := NewLoanRepository(newTestDB(t))

	l := loan.NewLoan("123", "Fulano")
	require.NoError(t, repo.Create(context.Background(), l))

	assert.NotZero(t, l.ID)
	assert.False(t, l.CreatedAt.IsZero())
}

// TestLoanRepoExistsActiveByISBN 测试在借存在性查询
func TestLoanRepoExistsActiveByISBN(t *testing.T) {
	repo := NewLoanRepository(newTestDB(t))

	exists, err := repo.ExistsActiveByISBN(context.Background(), "123")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(context.Background(), loan.NewLoan("123", "Fulano")))

	exists, err = repo.ExistsActiveByISBN(context.Background(), "123")
	require.NoError(t, err)
	assert.True(t, exists)

	// 其它ISBN不受影响
	exists, err = repo.ExistsActiveByISBN(context.Background(), "456")
	require.NoError(t, err)
	assert.False(t, exists)
}
