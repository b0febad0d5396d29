// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/condition"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrVoucherNotFound         = repository.ErrVoucherNotFound
	ErrEnterpriseOfferNotFound = repository.ErrEnterpriseOfferNotFound
	ErrAssignmentNotFound      = repository.ErrAssignmentNotFound
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go Service
type Service interface {
	// Evaluate 判定购物车是否满足优惠的条件，并给出原因
	Evaluate(ctx context.Context, offer domain.Offer, basket domain.Basket) (domain.Decision, error)
	// IsSatisfied 任何错误都视为不满足
	IsSatisfied(ctx context.Context, offer domain.Offer, basket domain.Basket) bool
	// CheckVoucher 判定购物车能否使用兑换码，不会产生任何副作用
	CheckVoucher(ctx context.Context, code string, basket domain.Basket) (domain.Decision, error)
}

type service struct {
	repo       repository.EnterpriseRepository
	conditions *condition.Registry
	logger     *elog.Component
}

func NewService(repo repository.EnterpriseRepository, conditions *condition.Registry) Service {
	return &service{
		repo:       repo,
		conditions: conditions,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Evaluate(ctx context.Context, offer domain.Offer, basket domain.Basket) (domain.Decision, error) {
	c, ok := s.conditions.Get(offer.Condition.Type)
	if !ok {
		return domain.Rejected(domain.ReasonUnknownCondition),
			fmt.Errorf("未知的条件类型 %s, offer=%d", offer.Condition.Type, offer.ID)
	}
	return c.Evaluate(ctx, offer, basket)
}

func (s *service) IsSatisfied(ctx context.Context, offer domain.Offer, basket domain.Basket) bool {
	d, err := s.Evaluate(ctx, offer, basket)
	if err != nil {
		s.logger.Error("判定企业优惠条件失败",
			elog.FieldErr(err),
			elog.Int64("offer", offer.ID),
			elog.Int64("basket", basket.ID))
		return false
	}
	return d.Satisfied
}

func (s *service) CheckVoucher(ctx context.Context, code string, basket domain.Basket) (domain.Decision, error) {
	ledger, err := s.repo.FindCodeLedger(ctx, code)
	if err != nil {
		if errors.Is(err, ErrVoucherNotFound) || errors.Is(err, ErrEnterpriseOfferNotFound) {
			return domain.Rejected(domain.ReasonNoVoucher), fmt.Errorf("%w: code=%s", ErrVoucherNotFound, code)
		}
		return domain.Decision{}, err
	}
	return s.Evaluate(ctx, ledger.Offer, withVoucher(basket, ledger.Voucher))
}

// withVoucher 返回一个把 v 作为第一个兑换码的购物车副本
func withVoucher(basket domain.Basket, v domain.Voucher) domain.Basket {
	vouchers := slices.DeleteFunc(slices.Clone(basket.Vouchers), func(src domain.Voucher) bool {
		return src.Code == v.Code
	})
	basket.Vouchers = append([]domain.Voucher{v}, vouchers...)
	return basket
}
