package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rakib-007/hotel-reservation-system/internal/models"
)

// CustomerRepository 客户仓储
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create 创建客户
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// GetByID 根据 ID 获取客户
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByNameAndPhone 根据姓名和电话精确查找客户
func (r *CustomerRepository) GetByNameAndPhone(ctx context.Context, name, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("name = ? AND phone = ?", name, phone).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindOrCreate 按姓名和电话查找客户，不存在时创建。
// 已存在的客户原样返回，不会用新资料覆盖。
func (r *CustomerRepository) FindOrCreate(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	existing, err := r.GetByNameAndPhone(ctx, customer.Name, customer.Phone)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err := r.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List 获取客户列表，按创建时间倒序
func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	var customers []*models.Customer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Search 按姓名或电话模糊搜索客户
func (r *CustomerRepository) Search(ctx context.Context, keyword string) ([]*models.Customer, error) {
	var customers []*models.Customer
	like := "%" + keyword + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR phone LIKE ?", like, like).
		Order("created_at DESC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Update 更新客户
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete 删除客户
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Customer{}, id).Error
}

// Count 统计客户总数
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Count(&count).Error
	return count, err
}
