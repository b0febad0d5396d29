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
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/oracle"
	"github.com/gotomicro/ego/core/elog"
)

// EnterpriseCustomerCondition 购物车中的课程属于企业客户的目录，并且购物车的所有者是该企业的学员。
// 判定按照顺序短路，任何一步无法确认时都判定为不满足。
type EnterpriseCustomerCondition struct {
	switches domain.Switches
	oracle   oracle.Client
	logger   *elog.Component
}

func NewEnterpriseCustomerCondition(switches domain.Switches, client oracle.Client) *EnterpriseCustomerCondition {
	return &EnterpriseCustomerCondition{
		switches: switches,
		oracle:   client,
		logger:   elog.DefaultLogger,
	}
}

func (c *EnterpriseCustomerCondition) IsSatisfied(ctx context.Context, offer domain.Offer, basket domain.Basket) bool {
	d, _ := c.Evaluate(ctx, offer, basket)
	return d.Satisfied
}

func (c *EnterpriseCustomerCondition) Evaluate(ctx context.Context, offer domain.Offer, basket domain.Basket) (domain.Decision, error) {
	d := c.evaluate(ctx, offer, basket)
	evaluations.WithLabelValues(string(domain.ConditionTypeEnterpriseCustomer),
		strconv.FormatBool(d.Satisfied), string(d.Reason)).Inc()
	if !d.Satisfied {
		c.logger.Debug("不满足企业优惠条件",
			elog.Int64("offer", offer.ID),
			elog.Int64("basket", basket.ID),
			elog.String("reason", string(d.Reason)))
	}
	return d, nil
}

func (c *EnterpriseCustomerCondition) evaluate(ctx context.Context, offer domain.Offer, basket domain.Basket) domain.Decision {
	if !c.switches.EnterpriseOffers {
		return domain.Rejected(domain.ReasonOffersDisabled)
	}
	if offer.Type == domain.OfferTypeVoucher && !c.switches.EnterpriseOffersForCoupons {
		return domain.Rejected(domain.ReasonCouponOffersDisabled)
	}

	if offer.PartnerID != basket.Site.PartnerID {
		return domain.Rejected(domain.ReasonPartnerMismatch)
	}

	if basket.IsEmpty() || basket.Total().IsZero() {
		return domain.Rejected(domain.ReasonEmptyBasket)
	}

	courseRunIDs := CourseRunIDs(basket)
	if len(courseRunIDs) == 0 {
		return domain.Rejected(domain.ReasonNoCourseProduct)
	}

	if basket.Anonymous() {
		return domain.Rejected(domain.ReasonAnonymousOwner)
	}

	cond := offer.Condition
	learner, err := c.oracle.EnterpriseLearner(ctx, basket.Site, *basket.Owner)
	switch {
	case errors.Is(err, oracle.ErrLearnerNotFound):
		// 兑换码本身就是资格凭证，学员会在选课时关联到企业
		if offer.Type != domain.OfferTypeVoucher {
			return domain.Rejected(domain.ReasonNotEnterpriseLearner)
		}
	case err != nil:
		c.logger.Warn("查询企业学员失败",
			elog.FieldErr(err),
			elog.Int64("uid", basket.Owner.ID),
			elog.String("site", basket.Site.Domain))
		return domain.Rejected(domain.ReasonOracleUnavailable)
	case !sameUUID(learner.EnterpriseCustomer.UUID, cond.EnterpriseCustomerUUID):
		return domain.Rejected(domain.ReasonWrongEnterprise)
	}

	catalog, ok := ResolveCatalog(cond, basket)
	if !ok {
		return domain.Rejected(domain.ReasonInvalidCatalog)
	}
	contains, err := c.oracle.CatalogContainsCourseRuns(ctx, basket.Site, cond.EnterpriseCustomerUUID, catalog, courseRunIDs)
	if err != nil {
		c.logger.Warn("查询企业目录失败",
			elog.FieldErr(err),
			elog.String("customer", cond.EnterpriseCustomerUUID),
			elog.String("catalog", catalog),
			elog.String("site", basket.Site.Domain))
		return domain.Rejected(domain.ReasonOracleUnavailable)
	}
	if !contains {
		return domain.Rejected(domain.ReasonNotInCatalog)
	}
	return domain.Satisfied(domain.ReasonEnterpriseCustomer)
}
