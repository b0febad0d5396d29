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

package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	assignmentStatusPending  = "EMAIL_PENDING"
	assignmentStatusRedeemed = "REDEEMED"
	assignmentStatusRevoked  = "REVOKED"
)

var (
	ErrVoucherNotFound           = gorm.ErrRecordNotFound
	ErrAssignmentNotFound        = errors.New("兑换码分配记录不存在")
	ErrDuplicateRedemption       = errors.New("订单已经核销过该兑换码")
	ErrRecordChangedConcurrently = errors.New("记录已被并发修改")
)

// VerifyFunc 在持有兑换码行锁的情况下，对最新数据再次校验
type VerifyFunc func(v Voucher, assignments []OfferAssignment, logs []RedemptionLog) error

// DistributeFunc 在持有兑换码行锁的情况下，计算需要新增的分配记录
type DistributeFunc func(vs []Voucher, assignments []OfferAssignment) ([]OfferAssignment, error)

type EnterpriseDAO interface {
	CreateCoupon(ctx context.Context, c Condition, offers []Offer, vouchers []Voucher) ([]Offer, []Voucher, error)
	FindOfferByID(ctx context.Context, id int64) (Offer, error)
	FindOffersByIDs(ctx context.Context, ids []int64) ([]Offer, error)
	FindConditionByID(ctx context.Context, id int64) (Condition, error)
	FindVoucherByCode(ctx context.Context, code string) (Voucher, error)
	FindOfferIDsByVoucherID(ctx context.Context, vid int64) ([]int64, error)
	FindAssignmentsByCode(ctx context.Context, code string) ([]OfferAssignment, error)
	FindRedemptionLogsByCode(ctx context.Context, code string) ([]RedemptionLog, error)
	FindAssignmentsByOfferID(ctx context.Context, offerID int64, offset, limit int) ([]OfferAssignment, error)
	CountAssignmentsByOfferID(ctx context.Context, offerID int64) (int64, error)
	Assign(ctx context.Context, codes []string, fn DistributeFunc) ([]OfferAssignment, error)
	RevokeAssignment(ctx context.Context, offerID int64, code, email string) error
	Redeem(ctx context.Context, l RedemptionLog, verify VerifyFunc) (RedemptionLog, error)
}

type gormEnterpriseDAO struct {
	db *egorm.Component
}

func NewGORMEnterpriseDAO(db *egorm.Component) EnterpriseDAO {
	return &gormEnterpriseDAO{db: db}
}

// CreateCoupon 只有一个优惠时所有兑换码共享这个优惠，否则第 i 个兑换码挂在第 i 个优惠上
func (g *gormEnterpriseDAO) CreateCoupon(ctx context.Context, c Condition, offers []Offer, vouchers []Voucher) ([]Offer, []Voucher, error) {
	if len(offers) != 1 && len(offers) != len(vouchers) {
		return nil, nil, fmt.Errorf("优惠数量 %d 与兑换码数量 %d 不匹配", len(offers), len(vouchers))
	}
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c.Ctime, c.Utime = now, now
		if err := tx.Create(&c).Error; err != nil {
			return fmt.Errorf("创建条件失败: %w", err)
		}
		for i := range offers {
			offers[i].ConditionId = c.Id
			offers[i].Ctime, offers[i].Utime = now, now
		}
		if err := tx.Create(&offers).Error; err != nil {
			return fmt.Errorf("创建优惠失败: %w", err)
		}
		for i := range vouchers {
			vouchers[i].Ctime, vouchers[i].Utime = now, now
		}
		if err := tx.Create(&vouchers).Error; err != nil {
			return fmt.Errorf("创建兑换码失败: %w", err)
		}
		links := make([]VoucherOffer, 0, len(vouchers))
		for i := range vouchers {
			o := offers[0]
			if len(offers) > 1 {
				o = offers[i]
			}
			links = append(links, VoucherOffer{VoucherId: vouchers[i].Id, OfferId: o.Id, Ctime: now})
		}
		return tx.Create(&links).Error
	})
	return offers, vouchers, err
}

func (g *gormEnterpriseDAO) FindOfferByID(ctx context.Context, id int64) (Offer, error) {
	var res Offer
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *gormEnterpriseDAO) FindOffersByIDs(ctx context.Context, ids []int64) ([]Offer, error) {
	var res []Offer
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *gormEnterpriseDAO) FindConditionByID(ctx context.Context, id int64) (Condition, error) {
	var res Condition
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *gormEnterpriseDAO) FindVoucherByCode(ctx context.Context, code string) (Voucher, error) {
	var res Voucher
	err := g.db.WithContext(ctx).First(&res, "code = ?", code).Error
	return res, err
}

func (g *gormEnterpriseDAO) FindOfferIDsByVoucherID(ctx context.Context, vid int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&VoucherOffer{}).
		Where("voucher_id = ?", vid).Order("offer_id ASC").Pluck("offer_id", &res).Error
	return res, err
}

func (g *gormEnterpriseDAO) FindAssignmentsByCode(ctx context.Context, code string) ([]OfferAssignment, error) {
	var res []OfferAssignment
	err := g.db.WithContext(ctx).Where("code = ?", code).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *gormEnterpriseDAO) FindRedemptionLogsByCode(ctx context.Context, code string) ([]RedemptionLog, error) {
	var res []RedemptionLog
	err := g.db.WithContext(ctx).Where("code = ?", code).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *gormEnterpriseDAO) FindAssignmentsByOfferID(ctx context.Context, offerID int64, offset, limit int) ([]OfferAssignment, error) {
	var res []OfferAssignment
	err := g.db.WithContext(ctx).Where("offer_id = ?", offerID).
		Order("utime DESC, id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *gormEnterpriseDAO) CountAssignmentsByOfferID(ctx context.Context, offerID int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&OfferAssignment{}).
		Where("offer_id = ?", offerID).Count(&cnt).Error
	return cnt, err
}

func (g *gormEnterpriseDAO) Assign(ctx context.Context, codes []string, fn DistributeFunc) ([]OfferAssignment, error) {
	var res []OfferAssignment
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vs []Voucher
		// 按照 code 排序加锁，避免死锁
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code IN ?", codes).Order("code ASC").Find(&vs).Error; err != nil {
			return err
		}
		if len(vs) != len(codes) {
			return fmt.Errorf("%w: 期望 %d 个兑换码，实际找到 %d 个", ErrVoucherNotFound, len(codes), len(vs))
		}
		var as []OfferAssignment
		if err := tx.Where("code IN ?", codes).Order("id ASC").Find(&as).Error; err != nil {
			return err
		}
		created, err := fn(vs, as)
		if err != nil {
			return err
		}
		if len(created) == 0 {
			return nil
		}
		now := time.Now().UnixMilli()
		for i := range created {
			created[i].Status = assignmentStatusPending
			created[i].Ctime, created[i].Utime = now, now
		}
		if err = tx.Create(&created).Error; err != nil {
			return fmt.Errorf("创建分配记录失败: %w", err)
		}
		res = created
		return nil
	})
	return res, err
}

func (g *gormEnterpriseDAO) RevokeAssignment(ctx context.Context, offerID int64, code, email string) error {
	res := g.db.WithContext(ctx).Model(&OfferAssignment{}).
		Where("offer_id = ? AND code = ? AND user_email = ? AND status = ?",
			offerID, code, email, assignmentStatusPending).
		Updates(map[string]any{
			"status": assignmentStatusRevoked,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: offer=%d code=%s", ErrAssignmentNotFound, offerID, code)
	}
	return nil
}

// Redeem 在兑换码行锁内重新校验，校验通过后增加订单数、
// 将对应的预留标记为已核销并写入核销流水
func (g *gormEnterpriseDAO) Redeem(ctx context.Context, l RedemptionLog, verify VerifyFunc) (RedemptionLog, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v Voucher
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&v, "code = ?", l.Code).Error; err != nil {
			return err
		}

		var logs []RedemptionLog
		if err := tx.Where("code = ?", l.Code).Order("id ASC").Find(&logs).Error; err != nil {
			return err
		}
		for _, existing := range logs {
			if existing.OrderSn == l.OrderSn {
				l = existing
				return fmt.Errorf("%w: order=%s", ErrDuplicateRedemption, l.OrderSn)
			}
		}

		var as []OfferAssignment
		if err := tx.Where("code = ?", l.Code).Order("id ASC").Find(&as).Error; err != nil {
			return err
		}
		if err := verify(v, as, logs); err != nil {
			return err
		}

		now := time.Now().UnixMilli()
		version := v.Version
		res := tx.Model(&Voucher{}).
			Where("id = ? AND version = ?", v.Id, version).
			Updates(map[string]any{
				"num_orders": v.NumOrders + 1,
				"version":    version + 1,
				"utime":      now,
			})
		if res.Error != nil {
			return fmt.Errorf("更新兑换码订单数失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: code=%s", ErrRecordChangedConcurrently, l.Code)
		}

		pending := slice.FilterMap(as, func(idx int, src OfferAssignment) (int64, bool) {
			return src.Id, src.OfferId == l.OfferId && src.Status == assignmentStatusPending &&
				equalEmail(src.UserEmail, l.UserEmail)
		})
		if len(pending) > 0 {
			if err := tx.Model(&OfferAssignment{}).Where("id = ?", pending[0]).
				Updates(map[string]any{
					"status": assignmentStatusRedeemed,
					"utime":  now,
				}).Error; err != nil {
				return fmt.Errorf("更新分配记录失败: %w", err)
			}
		}

		l.VoucherId = v.Id
		l.NumOrders = v.NumOrders + 1
		l.Ctime, l.Utime = now, now
		if err := tx.Create(&l).Error; err != nil {
			if g.isMySQLUniqueIndexError(err) {
				return fmt.Errorf("%w: order=%s", ErrDuplicateRedemption, l.OrderSn)
			}
			return err
		}
		return nil
	})
	return l, err
}

func (g *gormEnterpriseDAO) isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return true
		}
	}
	return false
}

func equalEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
