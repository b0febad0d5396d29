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

import "errors"

var (
	// ErrAmbiguousAssignment 同一个 (offer, code, email) 上有多条预留，数据不一致
	ErrAmbiguousAssignment = errors.New("兑换码分配记录不唯一")
	// ErrCodeExhausted 并发核销中落败，兑换码已经用完
	ErrCodeExhausted = errors.New("兑换码已经用完")
	// ErrConditionNotSatisfied 购物车不满足企业优惠条件
	ErrConditionNotSatisfied = errors.New("不满足企业优惠条件")
	// ErrInsufficientSlots 分配邮箱的数量超过兑换码的剩余容量
	ErrInsufficientSlots = errors.New("兑换码剩余容量不足")
)
