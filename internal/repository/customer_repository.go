package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

type CustomerRepository interface {
	RecordOrder(customer models.Customer, orderedAt time.Time) error
	GetByEmail(email string) (*models.CustomerRecord, error)
	GetAll() ([]models.CustomerRecord, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// RecordOrder upserts the directory entry for the order's customer: first
// order creates the row, later orders refresh name, phone and LastOrderAt.
// Customers without an email are not tracked.
func (r *customerRepository) RecordOrder(customer models.Customer, orderedAt time.Time) error {
	if customer.Email == "" {
		return nil
	}

	var record models.CustomerRecord
	err := r.db.Where("email = ?", customer.Email).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.CustomerRecord{
			Name:         customer.Name,
			Email:        customer.Email,
			Phone:        customer.Phone,
			FirstOrderAt: orderedAt,
			LastOrderAt:  orderedAt,
			OrderCount:   1,
		}
		return r.db.Create(&record).Error
	}
	if err != nil {
		return err
	}

	record.Name = customer.Name
	if customer.Phone != "" {
		record.Phone = customer.Phone
	}
	record.LastOrderAt = orderedAt
	record.OrderCount++
	return r.db.Save(&record).Error
}

func (r *customerRepository) GetByEmail(email string) (*models.CustomerRecord, error) {
	var record models.CustomerRecord
	err := r.db.Where("email = ?", email).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *customerRepository) GetAll() ([]models.CustomerRecord, error) {
	var records []models.CustomerRecord
	err := r.db.Order("last_order_at DESC").Find(&records).Error
	return records, err
}
