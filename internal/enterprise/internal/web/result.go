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

package web

import (
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	voucherNotFoundResult = ginx.Result{
		Code: errs.VoucherNotFoundError.Code,
		Msg:  errs.VoucherNotFoundError.Msg,
	}
	insufficientSlotsResult = ginx.Result{
		Code: errs.InsufficientSlotsError.Code,
		Msg:  errs.InsufficientSlotsError.Msg,
	}
	invalidUsagePolicyResult = ginx.Result{
		Code: errs.InvalidUsagePolicyError.Code,
		Msg:  errs.InvalidUsagePolicyError.Msg,
	}
	invalidBasketResult = ginx.Result{
		Code: errs.InvalidBasketError.Code,
		Msg:  errs.InvalidBasketError.Msg,
	}
	invalidCouponResult = ginx.Result{
		Code: errs.InvalidCouponError.Code,
		Msg:  errs.InvalidCouponError.Msg,
	}
	assignmentNotFoundResult = ginx.Result{
		Code: errs.AssignmentNotFoundError.Code,
		Msg:  errs.AssignmentNotFoundError.Msg,
	}
	siteNotFoundResult = ginx.Result{
		Code: errs.SiteNotFoundError.Code,
		Msg:  errs.SiteNotFoundError.Msg,
	}
)
