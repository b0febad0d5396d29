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
	"strings"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidUsagePolicy = errors.New("兑换码使用策略不合法")
	ErrInvalidCoupon      = errors.New("兑换码批次参数不合法")
)

// CodeGenerator 生成 n 个互不相同的兑换码
type CodeGenerator interface {
	GenerateN(n int) ([]string, error)
}

//go:generate mockgen -source=./admin.go -package=svcmocks -destination=./mocks/admin.mock.go AdminService
type AdminService interface {
	CreateCoupon(ctx context.Context, c domain.Coupon) (domain.Coupon, error)
	// AssignCodes 把邮箱分配到兑换码上，返回新增的分配记录
	AssignCodes(ctx context.Context, codes []string, emails []string) ([]domain.Assignment, error)
	RevokeAssignment(ctx context.Context, offerID int64, code, email string) error
	ListAssignments(ctx context.Context, offerID int64, offset, limit int) ([]domain.Assignment, int64, error)
}

type adminService struct {
	repo    repository.EnterpriseRepository
	codeGen CodeGenerator
	logger  *elog.Component
}

func NewAdminService(repo repository.EnterpriseRepository, codeGen CodeGenerator) AdminService {
	return &adminService{
		repo:    repo,
		codeGen: codeGen,
		logger:  elog.DefaultLogger,
	}
}

// CreateCoupon 单次使用的兑换码共享同一个优惠，其他策略每个兑换码一个优惠
func (s *adminService) CreateCoupon(ctx context.Context, c domain.Coupon) (domain.Coupon, error) {
	if !c.Usage.Valid() {
		return domain.Coupon{}, fmt.Errorf("%w: %s", ErrInvalidUsagePolicy, c.Usage)
	}
	if c.Quantity <= 0 || c.MaxGlobalApplications < 0 {
		return domain.Coupon{}, fmt.Errorf("%w: quantity=%d max=%d", ErrInvalidCoupon, c.Quantity, c.MaxGlobalApplications)
	}
	if _, err := uuid.Parse(c.Condition.EnterpriseCustomerUUID); err != nil {
		return domain.Coupon{}, fmt.Errorf("%w: 企业客户 UUID 不合法: %w", ErrInvalidCoupon, err)
	}
	if c.Condition.EnterpriseCustomerCatalogUUID != "" {
		if _, err := uuid.Parse(c.Condition.EnterpriseCustomerCatalogUUID); err != nil {
			return domain.Coupon{}, fmt.Errorf("%w: 企业目录 UUID 不合法: %w", ErrInvalidCoupon, err)
		}
	}
	if c.Condition.Type == "" {
		c.Condition.Type = domain.ConditionTypeAssignableEnterpriseCustomer
	}
	if c.OfferType == "" {
		c.OfferType = domain.OfferTypeVoucher
	}

	codes, err := s.codeGen.GenerateN(c.Quantity)
	if err != nil {
		return domain.Coupon{}, err
	}
	offerCnt := c.Quantity
	if c.Usage == domain.UsageSingleUse {
		offerCnt = 1
	}
	c.Offers = make([]domain.Offer, 0, offerCnt)
	for i := 0; i < offerCnt; i++ {
		c.Offers = append(c.Offers, domain.Offer{
			Name:                  fmt.Sprintf("Coupon [%s]-%d", c.Name, i+1),
			PartnerID:             c.PartnerID,
			Type:                  c.OfferType,
			Condition:             c.Condition,
			MaxGlobalApplications: c.MaxGlobalApplications,
		})
	}
	c.Vouchers = make([]domain.Voucher, 0, len(codes))
	for _, code := range codes {
		c.Vouchers = append(c.Vouchers, domain.Voucher{
			Code:  code,
			Name:  c.Name,
			Usage: c.Usage,
		})
	}
	return s.repo.CreateCoupon(ctx, c)
}

func (s *adminService) AssignCodes(ctx context.Context, codes []string, emails []string) ([]domain.Assignment, error) {
	emails = normalizeEmails(emails)
	if len(codes) == 0 || len(emails) == 0 {
		return nil, nil
	}
	return s.repo.Assign(ctx, codes, func(ledgers []domain.CodeLedger) ([]domain.Assignment, error) {
		return distribute(ledgers, emails)
	})
}

func (s *adminService) RevokeAssignment(ctx context.Context, offerID int64, code, email string) error {
	return s.repo.RevokeAssignment(ctx, offerID, code, strings.TrimSpace(email))
}

func (s *adminService) ListAssignments(ctx context.Context, offerID int64, offset, limit int) ([]domain.Assignment, int64, error) {
	var (
		eg    errgroup.Group
		as    []domain.Assignment
		total int64
	)
	eg.Go(func() error {
		var err error
		as, err = s.repo.FindAssignments(ctx, offerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalAssignments(ctx, offerID)
		return err
	})
	return as, total, eg.Wait()
}

// distribute 按照邮箱顺序依次找到第一个还有空位的兑换码。
// 单次使用和多次使用-每人的兑换码只分配给从未使用过的码，
// 后者会给同一个邮箱分配 ceiling 次。
func distribute(ledgers []domain.CodeLedger, emails []string) ([]domain.Assignment, error) {
	slots := make([]int64, len(ledgers))
	for i, l := range ledgers {
		slots[i] = assignableSlots(l)
	}
	var res []domain.Assignment
	for _, email := range emails {
		idx := -1
		for i, l := range ledgers {
			if slots[i] <= 0 {
				continue
			}
			if l.Voucher.Usage == domain.UsageOncePerCustomer &&
				(l.PendingOf(l.Offer.ID, email) > 0 || l.RedeemedBy(email) > 0 || assigned(res, l.Voucher.Code, email)) {
				continue
			}
			idx = i
			break
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: email=%s", domain.ErrInsufficientSlots, email)
		}
		l := ledgers[idx]
		times := int64(1)
		if l.Voucher.Usage == domain.UsageMultiUsePerCustomer {
			times = slots[idx]
		}
		for j := int64(0); j < times; j++ {
			res = append(res, domain.Assignment{
				OfferID:   l.Offer.ID,
				Code:      l.Voucher.Code,
				UserEmail: email,
				Status:    domain.AssignmentStatusPending,
			})
		}
		slots[idx] -= times
	}
	return res, nil
}

func assignableSlots(l domain.CodeLedger) int64 {
	switch l.Voucher.Usage {
	case domain.UsageSingleUse, domain.UsageMultiUsePerCustomer:
		if !l.Pristine() {
			return 0
		}
		return l.Ceiling()
	default:
		return l.FreeSlots()
	}
}

func assigned(as []domain.Assignment, code, email string) bool {
	for _, a := range as {
		if a.Code == code && strings.EqualFold(a.UserEmail, email) {
			return true
		}
	}
	return false
}

// normalizeEmails 去掉空白和重复的邮箱，保持顺序
func normalizeEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	res := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		key := strings.ToLower(e)
		if e == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, e)
	}
	return res
}
