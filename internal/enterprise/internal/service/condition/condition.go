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

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
)

// Condition 优惠条件。
// Evaluate 给出判定结果以及原因，IsSatisfied 在任何错误下都返回 false。
type Condition interface {
	Evaluate(ctx context.Context, offer domain.Offer, basket domain.Basket) (domain.Decision, error)
	IsSatisfied(ctx context.Context, offer domain.Offer, basket domain.Basket) bool
}

// Registry 按照条件类型查找条件
type Registry struct {
	conditions map[domain.ConditionType]Condition
}

func NewRegistry() *Registry {
	return &Registry{conditions: make(map[domain.ConditionType]Condition, 2)}
}

func (r *Registry) Register(typ domain.ConditionType, c Condition) {
	r.conditions[typ] = c
}

func (r *Registry) Get(typ domain.ConditionType) (Condition, bool) {
	c, ok := r.conditions[typ]
	return c, ok
}
