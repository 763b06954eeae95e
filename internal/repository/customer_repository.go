package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/WebCoreServices/customer-portal/internal/httperr"
	"github.com/WebCoreServices/customer-portal/internal/models"
)

const CodeDuplicate = "duplicate"

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Exists(ctx context.Context, customerID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert persists the customer. A unique-index violation comes back as the
// duplicate business error; the caller's existence pre-check is advisory only.
func (r *CustomerRepository) Insert(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness(CodeDuplicate)
		}
		return err
	}
	return nil
}

func (r *CustomerRepository) ListAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
