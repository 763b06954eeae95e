package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/WebCoreServices/customer-portal/internal/httperr"
	"github.com/WebCoreServices/customer-portal/internal/models"
	"github.com/WebCoreServices/customer-portal/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Customer{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testCustomer(customerID string) *models.Customer {
	return &models.Customer{
		ID:          "key-" + customerID,
		CustomerID:  customerID,
		Fingerprint: "fp-" + customerID,
		FirstName:   "Dana",
		LastName:    "Levi",
		Phone:       "0501234567",
		Email:       "dana@example.com",
		Birthday:    "1990-05-20",
	}
}

func testUser(username string) *models.User {
	return &models.User{
		ID:           "key-" + username,
		FirstName:    "Dana",
		LastName:     "Levi",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "digest",
		Salt:         "salt",
	}
}

func TestCustomerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("exists is false before insert and true after", func(t *testing.T) {
		repo := repository.NewCustomerRepository(setupTestDB(t))

		exists, err := repo.Exists(ctx, "c-1")
		assert.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, repo.Insert(ctx, testCustomer("c-1")))

		exists, err = repo.Exists(ctx, "c-1")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate customer_id is a duplicate business error", func(t *testing.T) {
		repo := repository.NewCustomerRepository(setupTestDB(t))

		assert.NoError(t, repo.Insert(ctx, testCustomer("c-1")))

		dup := testCustomer("c-1")
		dup.ID = "another-key"
		err := repo.Insert(ctx, dup)
		assert.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, repository.CodeDuplicate))
	})

	t.Run("list all returns every inserted record", func(t *testing.T) {
		repo := repository.NewCustomerRepository(setupTestDB(t))

		assert.NoError(t, repo.Insert(ctx, testCustomer("c-1")))
		assert.NoError(t, repo.Insert(ctx, testCustomer("c-2")))

		customers, err := repo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, customers, 2)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("exists by username or email", func(t *testing.T) {
		repo := repository.NewUserRepository(setupTestDB(t))

		assert.NoError(t, repo.Insert(ctx, testUser("dana")))

		exists, err := repo.ExistsByUsernameOrEmail(ctx, "dana", "other@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUsernameOrEmail(ctx, "other", "dana@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUsernameOrEmail(ctx, "other", "other@example.com")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate username is a duplicate business error", func(t *testing.T) {
		repo := repository.NewUserRepository(setupTestDB(t))

		assert.NoError(t, repo.Insert(ctx, testUser("dana")))

		dup := testUser("dana")
		dup.ID = "another-key"
		dup.Email = "unique@example.com"
		err := repo.Insert(ctx, dup)
		assert.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, repository.CodeDuplicate))
	})

	t.Run("find by username is nil-nil when absent", func(t *testing.T) {
		repo := repository.NewUserRepository(setupTestDB(t))

		user, err := repo.FindByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("attempt counter increments and resets", func(t *testing.T) {
		repo := repository.NewUserRepository(setupTestDB(t))

		assert.NoError(t, repo.Insert(ctx, testUser("dana")))

		assert.NoError(t, repo.IncrementAttempts(ctx, "key-dana", 1))
		assert.NoError(t, repo.IncrementAttempts(ctx, "key-dana", 2))

		user, err := repo.FindByUsername(ctx, "dana")
		assert.NoError(t, err)
		assert.Equal(t, 2, user.LoginAttempts)

		assert.NoError(t, repo.ResetAttempts(ctx, "key-dana"))

		user, err = repo.FindByUsername(ctx, "dana")
		assert.NoError(t, err)
		assert.Equal(t, 0, user.LoginAttempts)
	})
}
