package loan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmdm/library/internal/domain/book"
)

// fakeLoanRepo 手写的借阅仓储桩实现
type fakeLoanRepo struct {
	existsActive bool
	existsErr    error
	createCalls  int
	createErr    error
}

func (f *fakeLoanRepo) Create(ctx context.Context, l *Loan) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	l.ID = 1
	return nil
}

func (f *fakeLoanRepo) ExistsActiveByISBN(ctx context.Context, isbn string) (bool, error) {
	return f.existsActive, f.existsErr
}

// fakeBookFinder 手写的图书查询桩实现
type fakeBookFinder struct {
	book *book.Book
	err  error
}

func (f *fakeBookFinder) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return f.book, f.err
}

// TestCreateLoan 测试创建借阅成功
func TestCreateLoan(t *testing.T) {
	repo := &fakeLoanRepo{}
	finder := &fakeBookFinder{book: &book.Book{ID: 1, ISBN: "123", Title: "As aventuras"}}
	svc := NewService(repo, finder)

	saved, err := svc.Create(context.Background(), NewLoan("123", "Fulano"))

	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "123", saved.ISBN)
	assert.Equal(t, "Fulano", saved.Customer)
	assert.Equal(t, 1, repo.createCalls)
}

// TestCreateLoanBookNotFound 测试ISBN未登记时借阅被拒绝
func TestCreateLoanBookNotFound(t *testing.T) {
	repo := &fakeLoanRepo{}
	finder := &fakeBookFinder{err: book.ErrBookNotFound}
	svc := NewService(repo, finder)

	saved, err := svc.Create(context.Background(), NewLoan("123", "Fulano"))

	require.Error(t, err)
	assert.Nil(t, saved)
	assert.Equal(t, ErrBookNotFoundForISBN, err)
	// 拒绝时不能调用仓储的Create
	assert.Zero(t, repo.createCalls)
}

// TestCreateLoanAlreadyLoaned 测试图书已借出时借阅被拒绝
func TestCreateLoanAlreadyLoaned(t *testing.T) {
	repo := &fakeLoanRepo{existsActive: true}
	finder := &fakeBookFinder{book: &book.Book{ID: 1, ISBN: "123"}}
	svc := NewService(repo, finder)

	saved, err := svc.Create(context.Background(), NewLoan("123", "Fulano"))

	require.Error(t, err)
	assert.Nil(t, saved)
	assert.Equal(t, ErrBookAlreadyLoaned, err)
	assert.Zero(t, repo.createCalls)
}

// TestCreateLoanFinderFailure 测试图书查询失败时错误原样传递
func TestCreateLoanFinderFailure(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &fakeLoanRepo{}
	finder := &fakeBookFinder{err: dbErr}
	svc := NewService(repo, finder)

	saved, err := svc.Create(context.Background(), NewLoan("123", "Fulano"))

	assert.Nil(t, saved)
	assert.Equal(t, dbErr, err)
	assert.Zero(t, repo.createCalls)
}
