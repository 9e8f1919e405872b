package storefront_test

import (
	"testing"

	"github.com/gamehub-br/server/model"
	"github.com/gamehub-br/server/storefront"
	"github.com/gamehub-br/server/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*storefront.Service, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	_, ps := testutil.SetupTestCache(t)
	return storefront.New(db, ps, zap.NewNop()), db
}

func seedAccount(t *testing.T, db *gorm.DB, name string, balance int64) *model.Account {
	t.Helper()
	acc := &model.Account{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Balance:      balance,
	}
	require.NoError(t, db.Create(acc).Error)
	return acc
}

func seedTitle(t *testing.T, db *gorm.DB, name string, price int64) *model.Title {
	t.Helper()
	dev := &model.Developer{Name: name + " dev"}
	pub := &model.Publisher{Name: name + " pub"}
	require.NoError(t, db.Create(dev).Error)
	require.NoError(t, db.Create(pub).Error)
	title := &model.Title{
		Name:        name,
		Price:       price,
		DeveloperID: dev.ID,
		PublisherID: pub.ID,
	}
	require.NoError(t, db.Create(title).Error)
	return title
}

func addToCart(t *testing.T, db *gorm.DB, accountID, titleID int64) {
	t.Helper()
	require.NoError(t, db.Create(&model.CartEntry{AccountID: accountID, TitleID: titleID}).Error)
}

func grantOwnership(t *testing.T, db *gorm.DB, accountID, titleID int64) {
	t.Helper()
	require.NoError(t, db.Create(&model.LibraryEntry{AccountID: accountID, TitleID: titleID}).Error)
}
