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

package enterprise

import (
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/event/consumer"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/condition"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/oracle"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/web"
)

type Module struct {
	Svc           Service
	RedemptionSvc RedemptionService
	AdminSvc      AdminService
	Hdl           *Handler
	AdminHdl      *AdminHandler
	c             *consumer.OrderEventConsumer
}

type (
	Service           = service.Service
	RedemptionService = service.RedemptionService
	AdminService      = service.AdminService
	Handler           = web.Handler
	AdminHandler      = web.AdminHandler
	OracleConfig      = oracle.Config
	Switches          = domain.Switches
	Site              = domain.Site
	Sites             = domain.Sites
	Offer             = domain.Offer
	Condition         = domain.Condition
	Basket            = domain.Basket
	Decision          = domain.Decision
	Coupon            = domain.Coupon
	Voucher           = domain.Voucher
	UsagePolicy       = domain.UsagePolicy
	Assignment        = domain.Assignment
	Redemption        = domain.Redemption
)

var (
	ErrAmbiguousAssignment   = domain.ErrAmbiguousAssignment
	ErrCodeExhausted         = domain.ErrCodeExhausted
	ErrConditionNotSatisfied = domain.ErrConditionNotSatisfied
	ErrInsufficientSlots     = domain.ErrInsufficientSlots
	ErrVoucherNotFound       = service.ErrVoucherNotFound
)

// CourseRunIDs 购物车中所有课程座位的课程 run ID
var CourseRunIDs = condition.CourseRunIDs
