package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-tracker/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One named in-memory database per test keeps tests isolated while
	// letting gorm's connection pool see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Portfolio{}, &models.Investment{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, err := CreateUser(db, email, "hash", "Ada", "Lovelace")
	require.NoError(t, err)
	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "ada@example.com")

	_, err := CreateUser(db, "ada@example.com", "hash2", "Other", "Person")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestFindUser(t *testing.T) {
	db := testDB(t)
	created := seedUser(t, db, "ada@example.com")

	byEmail, err := FindUserByEmail(db, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := FindUserByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	_, err = FindUserByEmail(db, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FindUserByID(db, created.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "ada@example.com")
	other := seedUser(t, db, "taken@example.com")

	err := UpdateUserProfile(db, user, "Grace", "Hopper", "grace@example.com")
	require.NoError(t, err)

	reloaded, err := FindUserByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", reloaded.FirstName)
	assert.Equal(t, "grace@example.com", reloaded.Email)

	// Taking another account's email is refused; keeping your own is fine.
	assert.ErrorIs(t, UpdateUserProfile(db, user, "G", "H", other.Email), ErrDuplicateEmail)
	assert.NoError(t, UpdateUserProfile(db, user, "G", "H", "grace@example.com"))
}

func TestPortfolioOwnership(t *testing.T) {
	db := testDB(t)
	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")

	portfolio, err := CreatePortfolio(db, owner.ID, "Retirement", "long-term")
	require.NoError(t, err)

	owned, err := PortfolioOwnedBy(db, portfolio.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = PortfolioOwnedBy(db, portfolio.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, owned)

	owned, err = PortfolioOwnedBy(db, portfolio.ID+100, owner.ID)
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestPortfoliosByUserOrder(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "ada@example.com")

	first, err := CreatePortfolio(db, user.ID, "First", "")
	require.NoError(t, err)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
	second, err := CreatePortfolio(db, user.ID, "Second", "")
	require.NoError(t, err)

	portfolios, err := PortfoliosByUser(db, user.ID)
	require.NoError(t, err)
	require.Len(t, portfolios, 2)
	assert.Equal(t, second.ID, portfolios[0].ID)
	assert.Equal(t, first.ID, portfolios[1].ID)
}

func TestUpdatePortfolio(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "ada@example.com")
	portfolio, err := CreatePortfolio(db, user.ID, "Old", "old description")
	require.NoError(t, err)

	updated, err := UpdatePortfolio(db, portfolio.ID, "New", "new description")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)

	_, err = UpdatePortfolio(db, portfolio.ID+100, "X", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePortfolioCascades(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "ada@example.com")
	portfolio, err := CreatePortfolio(db, user.ID, "Retirement", "")
	require.NoError(t, err)
	kept, err := CreatePortfolio(db, user.ID, "Spare", "")
	require.NoError(t, err)

	_, err = CreateInvestment(db, portfolio.ID, "AAPL", "Apple Inc.",
		decimal.NewFromInt(10), decimal.NewFromInt(150), time.Now())
	require.NoError(t, err)
	surviving, err := CreateInvestment(db, kept.ID, "MSFT", "Microsoft",
		decimal.NewFromInt(1), decimal.NewFromInt(400), time.Now())
	require.NoError(t, err)

	require.NoError(t, DeletePortfolio(db, portfolio.ID))

	_, err = PortfolioByID(db, portfolio.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Investment{}).Where("portfolio_id = ?", portfolio.ID).Count(&count).Error)
	assert.Zero(t, count, "investments must be deleted with their portfolio")

	// Unrelated portfolios keep their investments.
	got, err := InvestmentByID(db, kept.ID, surviving.ID)
	require.NoError(t, err)
	assert.Equal(t, "MSFT", got.Symbol)

	assert.ErrorIs(t, DeletePortfolio(db, portfolio.ID), ErrNotFound)
}

func TestInvestmentRoundTrip(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "ada@example.com")
	portfolio, err := CreatePortfolio(db, user.ID, "Retirement", "")
	require.NoError(t, err)

	purchaseDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	created, err := CreateInvestment(db, portfolio.ID, "AAPL", "Apple Inc.",
		decimal.RequireFromString("10.5"), decimal.RequireFromString("150.25"), purchaseDate)
	require.NoError(t, err)

	got, err := InvestmentByID(db, portfolio.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Symbol)
	assert.True(t, got.Shares.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, got.PurchasePrice.Equal(decimal.RequireFromString("150.25")))

	updated, err := UpdateInvestment(db, portfolio.ID, created.ID, "AAPL", "Apple Inc.",
		decimal.RequireFromString("12"), decimal.RequireFromString("149"), purchaseDate)
	require.NoError(t, err)
	assert.True(t, updated.Shares.Equal(decimal.RequireFromString("12")))

	require.NoError(t, DeleteInvestment(db, portfolio.ID, created.ID))
	_, err = InvestmentByID(db, portfolio.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvestmentWrongPortfolio(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "ada@example.com")
	mine, err := CreatePortfolio(db, user.ID, "Mine", "")
	require.NoError(t, err)
	other, err := CreatePortfolio(db, user.ID, "Other", "")
	require.NoError(t, err)

	investment, err := CreateInvestment(db, other.ID, "TSLA", "Tesla",
		decimal.NewFromInt(1), decimal.NewFromInt(245), time.Now())
	require.NoError(t, err)

	_, err = InvestmentByID(db, mine.ID, investment.ID)
	assert.ErrorIs(t, err, ErrWrongPortfolio)

	err = DeleteInvestment(db, mine.ID, investment.ID)
	assert.ErrorIs(t, err, ErrWrongPortfolio)
}
