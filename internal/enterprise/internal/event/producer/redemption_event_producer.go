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

package producer

import (
	"context"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/event"
	"github.com/ecodeclub/ecommerce/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./redemption_event_producer.go -package=evtmocks -destination=../mocks/redemption.mock.go RedemptionEventProducer
type RedemptionEventProducer interface {
	Produce(ctx context.Context, evt event.RedemptionEvent) error
}

// NewRedemptionEventProducer 核销事件按兑换码分区，同一个兑换码的事件保持有序
func NewRedemptionEventProducer(q mq.MQ) (RedemptionEventProducer, error) {
	p, err := mqx.NewGeneralProducer[event.RedemptionEvent](q, event.RedemptionEventName,
		mqx.WithKey(func(evt event.RedemptionEvent) string {
			return evt.Code
		}))
	if err != nil {
		return nil, err
	}
	return p, nil
}
