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

package domain

import "strings"

// CodeLedger 某一个兑换码在其企业优惠上的使用快照。
// 所有的容量计算都基于同一个快照，保证判定结果只取决于快照本身。
type CodeLedger struct {
	Voucher Voucher
	// Offer 兑换码挂载的企业优惠
	Offer       Offer
	Assignments []Assignment
	Redemptions []Redemption
}

// Ceiling 兑换码的总容量
func (l CodeLedger) Ceiling() int64 {
	switch l.Voucher.Usage {
	case UsageSingleUse:
		return 1
	case UsageMultiUsePerCustomer:
		if l.Offer.MaxGlobalApplications > 0 {
			return l.Offer.MaxGlobalApplications
		}
		return 1
	default:
		if l.Offer.MaxGlobalApplications > 0 {
			return l.Offer.MaxGlobalApplications
		}
		return DefaultMaxUses
	}
}

// PendingCount 企业优惠上该兑换码仍处于预留状态的分配数量
func (l CodeLedger) PendingCount() int64 {
	var cnt int64
	for _, a := range l.Assignments {
		if a.OfferID == l.Offer.ID && a.Code == l.Voucher.Code && a.Pending() {
			cnt++
		}
	}
	return cnt
}

// PendingOf 指定邮箱在 (offerID, code) 上的预留数量
func (l CodeLedger) PendingOf(offerID int64, email string) int64 {
	var cnt int64
	for _, a := range l.Assignments {
		if a.Pending() && a.BelongsTo(offerID, l.Voucher.Code, email) {
			cnt++
		}
	}
	return cnt
}

// RedeemedBy 指定邮箱已经核销的次数。
// 没有分配记录的核销只出现在核销流水里，所以取两者较大的一个。
func (l CodeLedger) RedeemedBy(email string) int64 {
	var assigned, logged int64
	for _, a := range l.Assignments {
		if a.Status == AssignmentStatusRedeemed && a.Code == l.Voucher.Code &&
			strings.EqualFold(a.UserEmail, email) {
			assigned++
		}
	}
	for _, r := range l.Redemptions {
		if strings.EqualFold(r.UserEmail, email) {
			logged++
		}
	}
	return max(assigned, logged)
}

// FreeSlots 没有被任何人预留的剩余容量
func (l CodeLedger) FreeSlots() int64 {
	return max(l.Ceiling()-l.Voucher.NumOrders-l.PendingCount(), 0)
}

// Exhausted 全局容量已经用完
func (l CodeLedger) Exhausted() bool {
	return l.Voucher.NumOrders >= l.Ceiling()
}

// Pristine 兑换码既没有被使用，也没有被分配过
func (l CodeLedger) Pristine() bool {
	return l.Voucher.NumOrders == 0 && l.PendingCount() == 0
}

// RedemptionOf 订单在该兑换码上已有的核销流水
func (l CodeLedger) RedemptionOf(orderSN string) (Redemption, bool) {
	for _, r := range l.Redemptions {
		if r.OrderSN == orderSN {
			return r, true
		}
	}
	return Redemption{}, false
}
