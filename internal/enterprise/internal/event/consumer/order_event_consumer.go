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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/event"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type OrderEventConsumer struct {
	svc      service.RedemptionService
	consumer mq.Consumer
	// 核销出错时的重试间隔和次数，核销被拒绝不会重试
	retryInterval    time.Duration
	maxRetryInterval time.Duration
	maxRetries       int32
	logger           *elog.Component
}

func NewOrderEventConsumer(svc service.RedemptionService, q mq.MQ) (*OrderEventConsumer, error) {
	groupID := "enterprise-order"
	consumer, err := q.Consumer(event.OrderPlacedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{
		svc:              svc,
		consumer:         consumer,
		retryInterval:    100 * time.Millisecond,
		maxRetryInterval: 2 * time.Second,
		maxRetries:       3,
		logger:           elog.DefaultLogger,
	}, nil
}

// Start ctx 取消后退出
func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费下单事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt event.OrderPlacedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	basket, err := evt.Basket()
	if err != nil {
		return fmt.Errorf("解析下单事件购物车失败 order=%s: %w", evt.OrderSN, err)
	}

	// 每个兑换码单独核销，是否影响下单由下单流程自己决定
	for _, v := range basket.Vouchers {
		b := basket
		b.Vouchers = []domain.Voucher{v}
		if err = c.redeem(ctx, evt.OrderSN, b); err != nil {
			return fmt.Errorf("核销兑换码失败 order=%s code=%s: %w", evt.OrderSN, v.Code, err)
		}
	}
	return nil
}

// redeem 核销出错时按照指数退避重试，同一个订单重复核销是幂等的
func (c *OrderEventConsumer) redeem(ctx context.Context, orderSN string, basket domain.Basket) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(c.retryInterval, c.maxRetryInterval, c.maxRetries)
	if err != nil {
		return err
	}
	return retry.Retry(ctx, strategy, func() error {
		_, err1 := c.svc.Redeem(ctx, orderSN, basket)
		switch {
		case errors.Is(err1, domain.ErrCodeExhausted),
			errors.Is(err1, domain.ErrConditionNotSatisfied),
			errors.Is(err1, domain.ErrAmbiguousAssignment):
			c.logger.Warn("兑换码核销被拒绝",
				elog.FieldErr(err1),
				elog.String("order", orderSN),
				elog.String("code", basket.Vouchers[0].Code))
			return nil
		case err1 != nil:
			c.logger.Warn("核销兑换码出错",
				elog.FieldErr(err1),
				elog.String("order", orderSN),
				elog.String("code", basket.Vouchers[0].Code))
			return err1
		}
		return nil
	})
}
