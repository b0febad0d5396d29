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

package condition

import (
	"fmt"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
)

// UsageRule 某一种使用策略下，兑换码能否被指定邮箱使用。
// 判定只依赖 ledger 快照，相同的快照总是得到相同的结果。
type UsageRule interface {
	Check(ledger domain.CodeLedger, offerID int64, email string) (domain.Decision, error)
}

// UsageRules 按照使用策略查找规则
type UsageRules struct {
	rules map[domain.UsagePolicy]UsageRule
}

func NewUsageRules() *UsageRules {
	return &UsageRules{
		rules: map[domain.UsagePolicy]UsageRule{
			domain.UsageSingleUse:           capacityRule{uniqueReservation: true},
			domain.UsageMultiUse:            capacityRule{},
			domain.UsageOncePerCustomer:     capacityRule{uniqueReservation: true, perCustomer: onceEach},
			domain.UsageMultiUsePerCustomer: capacityRule{perCustomer: ceilingEach},
		},
	}
}

func (r *UsageRules) Register(usage domain.UsagePolicy, rule UsageRule) {
	r.rules[usage] = rule
}

func (r *UsageRules) Get(usage domain.UsagePolicy) (UsageRule, bool) {
	rule, ok := r.rules[usage]
	return rule, ok
}

// perCustomerLimit 单个邮箱最多可以核销的次数，0 表示不限制
type perCustomerLimit func(ledger domain.CodeLedger) int64

func onceEach(domain.CodeLedger) int64 {
	return 1
}

func ceilingEach(ledger domain.CodeLedger) int64 {
	return ledger.Ceiling()
}

// capacityRule 四种使用策略共用的判定流程：
// 全局上限、单个用户上限、已有预留、剩余容量。
type capacityRule struct {
	// uniqueReservation 同一个 (offer, code, email) 最多只能有一条预留
	uniqueReservation bool
	perCustomer       perCustomerLimit
}

func (r capacityRule) Check(ledger domain.CodeLedger, offerID int64, email string) (domain.Decision, error) {
	if ledger.Exhausted() {
		return domain.Rejected(domain.ReasonCodeExhausted), nil
	}
	if r.perCustomer != nil && ledger.RedeemedBy(email) >= r.perCustomer(ledger) {
		return domain.Rejected(domain.ReasonCustomerLimitReached), nil
	}
	pending := ledger.PendingOf(offerID, email)
	if r.uniqueReservation && pending > 1 {
		return domain.Rejected(domain.ReasonAmbiguousAssignment),
			fmt.Errorf("%w: offer=%d code=%s pending=%d", domain.ErrAmbiguousAssignment, offerID, ledger.Voucher.Code, pending)
	}
	if pending > 0 {
		return domain.Satisfied(domain.ReasonAssigned), nil
	}
	if ledger.FreeSlots() > 0 {
		return domain.Satisfied(domain.ReasonFreeSlot), nil
	}
	return domain.Rejected(domain.ReasonNoFreeSlot), nil
}
