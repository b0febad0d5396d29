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

package errs

var (
	VoucherNotFoundError    = ErrorCode{Code: 422001, Msg: "兑换码不存在"}
	InsufficientSlotsError  = ErrorCode{Code: 422002, Msg: "兑换码剩余容量不足"}
	InvalidUsagePolicyError = ErrorCode{Code: 422003, Msg: "兑换码使用策略不合法"}
	InvalidBasketError      = ErrorCode{Code: 422004, Msg: "购物车参数不合法"}
	InvalidCouponError      = ErrorCode{Code: 422005, Msg: "兑换码批次参数不合法"}
	AssignmentNotFoundError = ErrorCode{Code: 422006, Msg: "兑换码分配记录不存在"}
	SiteNotFoundError       = ErrorCode{Code: 422007, Msg: "站点不存在"}

	SystemError = ErrorCode{Code: 522001, Msg: "系统错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
