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

type Reason string

const (
	ReasonEnterpriseCustomer   Reason = "enterprise_customer"
	ReasonAssigned             Reason = "assigned"
	ReasonFreeSlot             Reason = "free_slot"
	ReasonOffersDisabled       Reason = "enterprise_offers_disabled"
	ReasonCouponOffersDisabled Reason = "enterprise_coupon_offers_disabled"
	ReasonPartnerMismatch      Reason = "partner_mismatch"
	ReasonEmptyBasket          Reason = "empty_basket"
	ReasonNoCourseProduct      Reason = "no_course_product"
	ReasonAnonymousOwner       Reason = "anonymous_owner"
	ReasonNotEnterpriseLearner Reason = "not_enterprise_learner"
	ReasonWrongEnterprise      Reason = "wrong_enterprise"
	ReasonOracleUnavailable    Reason = "oracle_unavailable"
	ReasonInvalidCatalog       Reason = "invalid_catalog"
	ReasonNotInCatalog         Reason = "not_in_catalog"
	ReasonNoVoucher            Reason = "no_voucher"
	ReasonUnknownUsage         Reason = "unknown_usage"
	ReasonUnknownCondition     Reason = "unknown_condition"
	ReasonLedgerUnavailable    Reason = "ledger_unavailable"
	ReasonCodeExhausted        Reason = "code_exhausted"
	ReasonCustomerLimitReached Reason = "customer_limit_reached"
	ReasonNoFreeSlot           Reason = "no_free_slot"
	ReasonAmbiguousAssignment  Reason = "ambiguous_assignment"
)

// Decision 条件判定结果
type Decision struct {
	Satisfied bool
	Reason    Reason
}

func Satisfied(reason Reason) Decision {
	return Decision{Satisfied: true, Reason: reason}
}

func Rejected(reason Reason) Decision {
	return Decision{Reason: reason}
}

// CapacityExhausted 被拒绝的原因是容量不足，而不是从来都不满足条件
func (d Decision) CapacityExhausted() bool {
	return !d.Satisfied && (d.Reason == ReasonCodeExhausted ||
		d.Reason == ReasonNoFreeSlot ||
		d.Reason == ReasonCustomerLimitReached)
}
