// Package customer 提供客户管理服务
package customer

import (
	"context"

	"gorm.io/gorm"

	"github.com/rakib-007/hotel-reservation-system/internal/common/errors"
	"github.com/rakib-007/hotel-reservation-system/internal/common/utils"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
	"github.com/rakib-007/hotel-reservation-system/internal/repository"
)

// Service 客户服务
type Service struct {
	customerRepo *repository.CustomerRepository
}

// NewService 创建客户服务
func NewService(customerRepo *repository.CustomerRepository) *Service {
	return &Service{customerRepo: customerRepo}
}

// Get 获取客户详情
func (s *Service) Get(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCustomerNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return customer, nil
}

// List 获取客户列表，keyword 非空时按姓名或电话模糊搜索
func (s *Service) List(ctx context.Context, keyword string) ([]*models.Customer, error) {
	var (
		customers []*models.Customer
		err       error
	)
	if keyword != "" {
		customers, err = s.customerRepo.Search(ctx, keyword)
	} else {
		customers, err = s.customerRepo.List(ctx)
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return customers, nil
}

// UpdateRequest 更新客户资料请求
type UpdateRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	NIDPassport string `json:"nid_passport"`
}

// Update 更新客户资料
func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) (*models.Customer, error) {
	if req.Email != "" && !utils.ValidateEmail(req.Email) {
		return nil, errors.ErrCustomerInvalid.WithMessage("邮箱格式不正确")
	}

	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.NIDPassport = req.NIDPassport
	if req.Email != "" {
		customer.Email = utils.StringPtr(req.Email)
	} else {
		customer.Email = nil
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return customer, nil
}

// Delete 删除客户档案
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}
