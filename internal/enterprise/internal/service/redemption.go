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
	"time"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/event"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/event/producer"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/condition"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var redemptions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "enterprise",
		Subsystem: "redemption",
		Name:      "total",
		Help:      "兑换码核销结果",
	},
	[]string{"usage", "result"},
)

//go:generate mockgen -source=./redemption.go -package=svcmocks -destination=./mocks/redemption.mock.go RedemptionService
type RedemptionService interface {
	// Redeem 核销购物车中的第一个兑换码。
	// 并发核销时容量不足的一方得到 domain.ErrCodeExhausted，
	// 从来就不满足条件的得到 domain.ErrConditionNotSatisfied。
	// 同一个订单重复核销时直接返回已有的核销记录，并重新发送核销事件。
	Redeem(ctx context.Context, orderSN string, basket domain.Basket) (domain.Redemption, error)
}

type redemptionService struct {
	svc               Service
	repo              repository.EnterpriseRepository
	rules             *condition.UsageRules
	producer          producer.RedemptionEventProducer
	eventKeyGenerator func() string
	tracer            trace.Tracer
	logger            *elog.Component
}

func NewRedemptionService(svc Service,
	repo repository.EnterpriseRepository,
	rules *condition.UsageRules,
	p producer.RedemptionEventProducer,
	eventKeyGenerator func() string) RedemptionService {
	return &redemptionService{
		svc:               svc,
		repo:              repo,
		rules:             rules,
		producer:          p,
		eventKeyGenerator: eventKeyGenerator,
		tracer:            otel.GetTracerProvider().Tracer("internal/enterprise/redemption"),
		logger:            elog.DefaultLogger,
	}
}

func (r *redemptionService) Redeem(ctx context.Context, orderSN string, basket domain.Basket) (domain.Redemption, error) {
	ctx, span := r.tracer.Start(ctx, "enterprise.redeem")
	defer span.End()
	span.SetAttributes(attribute.String("order_sn", orderSN))

	res, usage, err := r.redeem(ctx, orderSN, basket)
	result := "success"
	switch {
	case errors.Is(err, domain.ErrCodeExhausted):
		result = "exhausted"
	case errors.Is(err, domain.ErrConditionNotSatisfied):
		result = "not_satisfied"
	case err != nil:
		result = "error"
		span.SetStatus(codes.Error, err.Error())
	}
	redemptions.WithLabelValues(usage.String(), result).Inc()
	return res, err
}

func (r *redemptionService) redeem(ctx context.Context, orderSN string, basket domain.Basket) (domain.Redemption, domain.UsagePolicy, error) {
	voucher, ok := basket.Voucher()
	if !ok {
		return domain.Redemption{}, "", fmt.Errorf("%w: 购物车中没有兑换码", domain.ErrConditionNotSatisfied)
	}
	if basket.Anonymous() {
		return domain.Redemption{}, "", fmt.Errorf("%w: 匿名购物车", domain.ErrConditionNotSatisfied)
	}
	ledger, err := r.repo.FindCodeLedger(ctx, voucher.Code)
	if err != nil {
		return domain.Redemption{}, "", err
	}
	usage := ledger.Voucher.Usage
	rule, ok := r.rules.Get(usage)
	if !ok {
		return domain.Redemption{}, usage, fmt.Errorf("%w: 未知的使用策略 %s", domain.ErrConditionNotSatisfied, usage)
	}

	// 订单已经核销过，不再判定容量
	if existing, ok := ledger.RedemptionOf(orderSN); ok {
		r.logger.Info("订单已经核销过兑换码",
			elog.String("order", orderSN),
			elog.String("code", voucher.Code))
		r.produce(ctx, existing)
		return existing, usage, nil
	}

	// 先做一次完整的判定，包括企业接口的查询，这一步不持有锁
	d, err := r.svc.Evaluate(ctx, ledger.Offer, withVoucher(basket, ledger.Voucher))
	if err != nil {
		return domain.Redemption{}, usage, err
	}
	if !d.Satisfied {
		if d.CapacityExhausted() {
			return domain.Redemption{}, usage, fmt.Errorf("%w: code=%s reason=%s", domain.ErrCodeExhausted, voucher.Code, d.Reason)
		}
		return domain.Redemption{}, usage, fmt.Errorf("%w: code=%s reason=%s", domain.ErrConditionNotSatisfied, voucher.Code, d.Reason)
	}

	offerID, email := ledger.Offer.ID, basket.Owner.Email
	res, err := r.repo.Redeem(ctx, domain.Redemption{
		OrderSN:      orderSN,
		Code:         ledger.Voucher.Code,
		OfferID:      offerID,
		UserID:       basket.Owner.ID,
		UserEmail:    email,
		CourseRunIDs: condition.CourseRunIDs(basket),
	}, func(locked domain.CodeLedger) error {
		// 持有行锁后基于最新的快照再判定一次
		d, err := rule.Check(locked, offerID, email)
		if err != nil {
			return err
		}
		if !d.Satisfied {
			return fmt.Errorf("%w: code=%s reason=%s", domain.ErrCodeExhausted, locked.Voucher.Code, d.Reason)
		}
		return nil
	})
	if errors.Is(err, repository.ErrDuplicateRedemption) {
		r.logger.Info("订单已经核销过兑换码",
			elog.String("order", orderSN),
			elog.String("code", voucher.Code))
		r.produce(ctx, res)
		return res, usage, nil
	}
	if err != nil {
		return domain.Redemption{}, usage, err
	}
	r.produce(ctx, res)
	return res, usage, nil
}

// produce 发送核销事件。重复核销时会再发一次，下游按照订单和兑换码去重
func (r *redemptionService) produce(ctx context.Context, res domain.Redemption) {
	evt := event.RedemptionEvent{
		Key:       r.eventKeyGenerator(),
		OrderSN:   res.OrderSN,
		Code:      res.Code,
		OfferID:   res.OfferID,
		Uid:       res.UserID,
		UserEmail: res.UserEmail,
		NumOrders: res.NumOrders,
		Ctime:     time.Now().UnixMilli(),
	}
	if err := r.producer.Produce(ctx, evt); err != nil {
		// 核销已经提交，消息发送失败只记录日志
		r.logger.Error("发送兑换码核销事件失败",
			elog.FieldErr(err),
			elog.String("order", res.OrderSN),
			elog.String("code", res.Code),
			elog.Int64("numOrders", res.NumOrders))
	}
}
