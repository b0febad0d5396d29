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

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrVoucherNotFound           = dao.ErrVoucherNotFound
	ErrAssignmentNotFound        = dao.ErrAssignmentNotFound
	ErrDuplicateRedemption       = dao.ErrDuplicateRedemption
	ErrEnterpriseOfferNotFound   = errors.New("兑换码没有挂载企业优惠")
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
)

// DistributeFunc 根据加锁后的兑换码使用情况，计算需要新增的分配
type DistributeFunc func(ledgers []domain.CodeLedger) ([]domain.Assignment, error)

// VerifyFunc 根据加锁后的兑换码使用情况，决定是否允许核销
type VerifyFunc func(ledger domain.CodeLedger) error

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go EnterpriseRepository
type EnterpriseRepository interface {
	CreateCoupon(ctx context.Context, c domain.Coupon) (domain.Coupon, error)
	FindOfferByID(ctx context.Context, id int64) (domain.Offer, error)
	FindVoucherByCode(ctx context.Context, code string) (domain.Voucher, error)
	// FindCodeLedger 兑换码、它挂载的企业优惠，以及它的分配和核销记录
	FindCodeLedger(ctx context.Context, code string) (domain.CodeLedger, error)
	Assign(ctx context.Context, codes []string, fn DistributeFunc) ([]domain.Assignment, error)
	RevokeAssignment(ctx context.Context, offerID int64, code, email string) error
	FindAssignments(ctx context.Context, offerID int64, offset, limit int) ([]domain.Assignment, error)
	TotalAssignments(ctx context.Context, offerID int64) (int64, error)
	Redeem(ctx context.Context, r domain.Redemption, verify VerifyFunc) (domain.Redemption, error)
}

type enterpriseRepository struct {
	dao    dao.EnterpriseDAO
	logger *elog.Component
}

func NewEnterpriseRepository(d dao.EnterpriseDAO) EnterpriseRepository {
	return &enterpriseRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (e *enterpriseRepository) CreateCoupon(ctx context.Context, c domain.Coupon) (domain.Coupon, error) {
	cond := e.toConditionEntity(c.Condition)
	offers := slice.Map(c.Offers, func(idx int, src domain.Offer) dao.Offer {
		return e.toOfferEntity(src)
	})
	vouchers := slice.Map(c.Vouchers, func(idx int, src domain.Voucher) dao.Voucher {
		return e.toVoucherEntity(src)
	})
	offers, vouchers, err := e.dao.CreateCoupon(ctx, cond, offers, vouchers)
	if err != nil {
		return domain.Coupon{}, err
	}
	cond.Id = offers[0].ConditionId
	c.Condition = e.toConditionDomain(cond)
	c.Offers = slice.Map(offers, func(idx int, src dao.Offer) domain.Offer {
		return e.toOfferDomain(src, cond)
	})
	c.Vouchers = slice.Map(vouchers, func(idx int, src dao.Voucher) domain.Voucher {
		offerID := offers[0].Id
		if len(offers) > 1 {
			offerID = offers[idx].Id
		}
		return e.toVoucherDomain(src, []int64{offerID})
	})
	return c, nil
}

func (e *enterpriseRepository) FindOfferByID(ctx context.Context, id int64) (domain.Offer, error) {
	o, err := e.dao.FindOfferByID(ctx, id)
	if err != nil {
		return domain.Offer{}, err
	}
	c, err := e.dao.FindConditionByID(ctx, o.ConditionId)
	if err != nil {
		return domain.Offer{}, err
	}
	return e.toOfferDomain(o, c), nil
}

func (e *enterpriseRepository) FindVoucherByCode(ctx context.Context, code string) (domain.Voucher, error) {
	v, err := e.dao.FindVoucherByCode(ctx, code)
	if err != nil {
		return domain.Voucher{}, err
	}
	ids, err := e.dao.FindOfferIDsByVoucherID(ctx, v.Id)
	if err != nil {
		return domain.Voucher{}, err
	}
	return e.toVoucherDomain(v, ids), nil
}

func (e *enterpriseRepository) FindCodeLedger(ctx context.Context, code string) (domain.CodeLedger, error) {
	v, err := e.FindVoucherByCode(ctx, code)
	if err != nil {
		return domain.CodeLedger{}, err
	}
	var (
		eg    errgroup.Group
		offer domain.Offer
		as    []dao.OfferAssignment
		logs  []dao.RedemptionLog
	)
	eg.Go(func() error {
		var err1 error
		offer, err1 = e.enterpriseOffer(ctx, v.OfferIDs)
		return err1
	})
	eg.Go(func() error {
		var err1 error
		as, err1 = e.dao.FindAssignmentsByCode(ctx, v.Code)
		return err1
	})
	eg.Go(func() error {
		var err1 error
		logs, err1 = e.dao.FindRedemptionLogsByCode(ctx, v.Code)
		return err1
	})
	if err = eg.Wait(); err != nil {
		return domain.CodeLedger{}, err
	}
	return e.toLedger(v, offer, as, logs), nil
}

// enterpriseOffer 兑换码挂载的第一个带有企业客户条件的优惠
func (e *enterpriseRepository) enterpriseOffer(ctx context.Context, offerIDs []int64) (domain.Offer, error) {
	if len(offerIDs) == 0 {
		return domain.Offer{}, ErrEnterpriseOfferNotFound
	}
	offers, err := e.dao.FindOffersByIDs(ctx, offerIDs)
	if err != nil {
		return domain.Offer{}, err
	}
	for _, o := range offers {
		c, err := e.dao.FindConditionByID(ctx, o.ConditionId)
		if err != nil {
			return domain.Offer{}, err
		}
		if c.EnterpriseCustomerUuid != "" {
			return e.toOfferDomain(o, c), nil
		}
	}
	return domain.Offer{}, fmt.Errorf("%w: offers=%v", ErrEnterpriseOfferNotFound, offerIDs)
}

func (e *enterpriseRepository) Assign(ctx context.Context, codes []string, fn DistributeFunc) ([]domain.Assignment, error) {
	// 优惠不会在分配过程中变化，可以在事务外查询
	offers := make(map[string]domain.Offer, len(codes))
	offerIDs := make(map[string][]int64, len(codes))
	for _, code := range codes {
		v, err := e.FindVoucherByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("%w: code=%s", err, code)
		}
		o, err := e.enterpriseOffer(ctx, v.OfferIDs)
		if err != nil {
			return nil, err
		}
		offers[code], offerIDs[code] = o, v.OfferIDs
	}
	created, err := e.dao.Assign(ctx, codes, func(vs []dao.Voucher, as []dao.OfferAssignment) ([]dao.OfferAssignment, error) {
		// 保持调用方传入的兑换码顺序
		byCode := make(map[string]dao.Voucher, len(vs))
		for _, v := range vs {
			byCode[v.Code] = v
		}
		ledgers := make([]domain.CodeLedger, 0, len(codes))
		for _, code := range codes {
			v := byCode[code]
			codeAssignments := slice.FilterMap(as, func(idx int, src dao.OfferAssignment) (dao.OfferAssignment, bool) {
				return src, src.Code == code
			})
			ledgers = append(ledgers, e.toLedger(e.toVoucherDomain(v, offerIDs[code]), offers[code], codeAssignments, nil))
		}
		res, err := fn(ledgers)
		if err != nil {
			return nil, err
		}
		return slice.Map(res, func(idx int, src domain.Assignment) dao.OfferAssignment {
			return e.toAssignmentEntity(src)
		}), nil
	})
	if err != nil {
		return nil, err
	}
	return slice.Map(created, func(idx int, src dao.OfferAssignment) domain.Assignment {
		return e.toAssignmentDomain(src)
	}), nil
}

func (e *enterpriseRepository) RevokeAssignment(ctx context.Context, offerID int64, code, email string) error {
	return e.dao.RevokeAssignment(ctx, offerID, code, email)
}

func (e *enterpriseRepository) FindAssignments(ctx context.Context, offerID int64, offset, limit int) ([]domain.Assignment, error) {
	as, err := e.dao.FindAssignmentsByOfferID(ctx, offerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.OfferAssignment) domain.Assignment {
		return e.toAssignmentDomain(src)
	}), nil
}

func (e *enterpriseRepository) TotalAssignments(ctx context.Context, offerID int64) (int64, error) {
	return e.dao.CountAssignmentsByOfferID(ctx, offerID)
}

func (e *enterpriseRepository) Redeem(ctx context.Context, r domain.Redemption, verify VerifyFunc) (domain.Redemption, error) {
	v, err := e.FindVoucherByCode(ctx, r.Code)
	if err != nil {
		return domain.Redemption{}, err
	}
	offer, err := e.enterpriseOffer(ctx, v.OfferIDs)
	if err != nil {
		return domain.Redemption{}, err
	}
	if r.OfferID == 0 {
		r.OfferID = offer.ID
	}
	l, err := e.dao.Redeem(ctx, e.toRedemptionEntity(r), func(locked dao.Voucher, as []dao.OfferAssignment, logs []dao.RedemptionLog) error {
		return verify(e.toLedger(e.toVoucherDomain(locked, v.OfferIDs), offer, as, logs))
	})
	return e.toRedemptionDomain(l), err
}

func (e *enterpriseRepository) toLedger(v domain.Voucher, o domain.Offer, as []dao.OfferAssignment, logs []dao.RedemptionLog) domain.CodeLedger {
	return domain.CodeLedger{
		Voucher: v,
		Offer:   o,
		Assignments: slice.Map(as, func(idx int, src dao.OfferAssignment) domain.Assignment {
			return e.toAssignmentDomain(src)
		}),
		Redemptions: slice.Map(logs, func(idx int, src dao.RedemptionLog) domain.Redemption {
			return e.toRedemptionDomain(src)
		}),
	}
}

func (e *enterpriseRepository) toConditionEntity(c domain.Condition) dao.Condition {
	return dao.Condition{
		Id:                            c.ID,
		Type:                          string(c.Type),
		EnterpriseCustomerUuid:        c.EnterpriseCustomerUUID,
		EnterpriseCustomerCatalogUuid: c.EnterpriseCustomerCatalogUUID,
		EnterpriseCustomerName:        c.EnterpriseCustomerName,
	}
}

func (e *enterpriseRepository) toConditionDomain(c dao.Condition) domain.Condition {
	return domain.Condition{
		ID:                            c.Id,
		Type:                          domain.ConditionType(c.Type),
		EnterpriseCustomerUUID:        c.EnterpriseCustomerUuid,
		EnterpriseCustomerCatalogUUID: c.EnterpriseCustomerCatalogUuid,
		EnterpriseCustomerName:        c.EnterpriseCustomerName,
		Ctime:                         c.Ctime,
		Utime:                         c.Utime,
	}
}

func (e *enterpriseRepository) toOfferEntity(o domain.Offer) dao.Offer {
	return dao.Offer{
		Id:                    o.ID,
		Name:                  o.Name,
		PartnerId:             o.PartnerID,
		ConditionId:           o.Condition.ID,
		OfferType:             string(o.Type),
		MaxGlobalApplications: o.MaxGlobalApplications,
	}
}

func (e *enterpriseRepository) toOfferDomain(o dao.Offer, c dao.Condition) domain.Offer {
	return domain.Offer{
		ID:                    o.Id,
		Name:                  o.Name,
		PartnerID:             o.PartnerId,
		Type:                  domain.OfferType(o.OfferType),
		Condition:             e.toConditionDomain(c),
		MaxGlobalApplications: o.MaxGlobalApplications,
		Ctime:                 o.Ctime,
		Utime:                 o.Utime,
	}
}

func (e *enterpriseRepository) toVoucherEntity(v domain.Voucher) dao.Voucher {
	return dao.Voucher{
		Id:        v.ID,
		Code:      v.Code,
		Name:      v.Name,
		Usage:     v.Usage.String(),
		NumOrders: v.NumOrders,
		Version:   v.Version,
	}
}

func (e *enterpriseRepository) toVoucherDomain(v dao.Voucher, offerIDs []int64) domain.Voucher {
	return domain.Voucher{
		ID:        v.Id,
		Code:      v.Code,
		Name:      v.Name,
		Usage:     domain.UsagePolicy(v.Usage),
		NumOrders: v.NumOrders,
		OfferIDs:  offerIDs,
		Version:   v.Version,
		Ctime:     v.Ctime,
		Utime:     v.Utime,
	}
}

func (e *enterpriseRepository) toAssignmentEntity(a domain.Assignment) dao.OfferAssignment {
	return dao.OfferAssignment{
		Id:        a.ID,
		OfferId:   a.OfferID,
		Code:      a.Code,
		UserEmail: a.UserEmail,
		Status:    a.Status.String(),
	}
}

func (e *enterpriseRepository) toAssignmentDomain(a dao.OfferAssignment) domain.Assignment {
	return domain.Assignment{
		ID:        a.Id,
		OfferID:   a.OfferId,
		Code:      a.Code,
		UserEmail: a.UserEmail,
		Status:    domain.AssignmentStatus(a.Status),
		Ctime:     a.Ctime,
		Utime:     a.Utime,
	}
}

func (e *enterpriseRepository) toRedemptionEntity(r domain.Redemption) dao.RedemptionLog {
	return dao.RedemptionLog{
		Id:        r.ID,
		VoucherId: r.VoucherID,
		Code:      r.Code,
		OrderSn:   r.OrderSN,
		OfferId:   r.OfferID,
		Uid:       r.UserID,
		UserEmail: r.UserEmail,
		NumOrders: r.NumOrders,
		CourseRuns: sqlx.JsonColumn[[]string]{
			Val:   r.CourseRunIDs,
			Valid: len(r.CourseRunIDs) > 0,
		},
	}
}

func (e *enterpriseRepository) toRedemptionDomain(l dao.RedemptionLog) domain.Redemption {
	return domain.Redemption{
		ID:           l.Id,
		OrderSN:      l.OrderSn,
		VoucherID:    l.VoucherId,
		Code:         l.Code,
		OfferID:      l.OfferId,
		UserID:       l.Uid,
		UserEmail:    l.UserEmail,
		NumOrders:    l.NumOrders,
		CourseRunIDs: l.CourseRuns.Val,
		Ctime:        l.Ctime,
	}
}
