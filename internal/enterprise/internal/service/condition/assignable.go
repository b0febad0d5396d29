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
	"context"
	"errors"
	"strconv"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// LedgerReader 查询兑换码的使用快照
type LedgerReader interface {
	FindCodeLedger(ctx context.Context, code string) (domain.CodeLedger, error)
}

// AssignableEnterpriseCustomerCondition 在企业客户条件的基础上，
// 按照兑换码的使用策略和分配记录决定当前用户能否使用兑换码
type AssignableEnterpriseCustomerCondition struct {
	base    Condition
	ledgers LedgerReader
	rules   *UsageRules
	logger  *elog.Component
}

func NewAssignableEnterpriseCustomerCondition(base Condition, ledgers LedgerReader, rules *UsageRules) *AssignableEnterpriseCustomerCondition {
	return &AssignableEnterpriseCustomerCondition{
		base:    base,
		ledgers: ledgers,
		rules:   rules,
		logger:  elog.DefaultLogger,
	}
}

func (c *AssignableEnterpriseCustomerCondition) IsSatisfied(ctx context.Context, offer domain.Offer, basket domain.Basket) bool {
	d, err := c.Evaluate(ctx, offer, basket)
	if err != nil {
		c.logger.Error("判定可分配企业优惠条件失败",
			elog.FieldErr(err),
			elog.Int64("offer", offer.ID),
			elog.Int64("basket", basket.ID))
		return false
	}
	return d.Satisfied
}

func (c *AssignableEnterpriseCustomerCondition) Evaluate(ctx context.Context, offer domain.Offer, basket domain.Basket) (domain.Decision, error) {
	d, err := c.evaluate(ctx, offer, basket)
	evaluations.WithLabelValues(string(domain.ConditionTypeAssignableEnterpriseCustomer),
		strconv.FormatBool(d.Satisfied), string(d.Reason)).Inc()
	return d, err
}

func (c *AssignableEnterpriseCustomerCondition) evaluate(ctx context.Context, offer domain.Offer, basket domain.Basket) (domain.Decision, error) {
	d, err := c.base.Evaluate(ctx, offer, basket)
	if err != nil || !d.Satisfied {
		return d, err
	}
	voucher, ok := basket.Voucher()
	if !ok {
		return domain.Rejected(domain.ReasonNoVoucher), nil
	}
	ledger, err := c.ledgers.FindCodeLedger(ctx, voucher.Code)
	if errors.Is(err, repository.ErrVoucherNotFound) || errors.Is(err, repository.ErrEnterpriseOfferNotFound) {
		return domain.Rejected(domain.ReasonNoVoucher), nil
	}
	if err != nil {
		return domain.Rejected(domain.ReasonLedgerUnavailable), err
	}
	rule, ok := c.rules.Get(ledger.Voucher.Usage)
	if !ok {
		c.logger.Error("未知的兑换码使用策略",
			elog.String("code", ledger.Voucher.Code),
			elog.String("usage", ledger.Voucher.Usage.String()))
		return domain.Rejected(domain.ReasonUnknownUsage), nil
	}
	return rule.Check(ledger, offer.ID, basket.Owner.Email)
}
