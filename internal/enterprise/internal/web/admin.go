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
	"errors"
	"fmt"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/enterprise")
	g.POST("/coupon/create", ginx.BS[CreateCouponReq](h.CreateCoupon))
	g.POST("/assignment/assign", ginx.BS[AssignCodesReq](h.AssignCodes))
	g.POST("/assignment/revoke", ginx.BS[RevokeAssignmentReq](h.RevokeAssignment))
	g.POST("/assignment/list", ginx.BS[ListAssignmentsReq](h.ListAssignments))
}

func (h *AdminHandler) CreateCoupon(ctx *ginx.Context, req CreateCouponReq, _ session.Session) (ginx.Result, error) {
	c, err := h.svc.CreateCoupon(ctx.Request.Context(), domain.Coupon{
		Name:                  req.Name,
		PartnerID:             req.PartnerID,
		OfferType:             domain.OfferType(req.OfferType),
		Usage:                 domain.UsagePolicy(req.Usage),
		MaxGlobalApplications: req.MaxGlobalApplications,
		Quantity:              req.Quantity,
		Condition: domain.Condition{
			Type:                          domain.ConditionTypeAssignableEnterpriseCustomer,
			EnterpriseCustomerUUID:        req.EnterpriseCustomerUUID,
			EnterpriseCustomerCatalogUUID: req.EnterpriseCustomerCatalogUUID,
			EnterpriseCustomerName:        req.EnterpriseCustomerName,
		},
	})
	switch {
	case errors.Is(err, service.ErrInvalidUsagePolicy):
		return invalidUsagePolicyResult, err
	case errors.Is(err, service.ErrInvalidCoupon):
		return invalidCouponResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建兑换码失败: %w", err)
	}
	return ginx.Result{
		Data: CreateCouponResp{
			OfferIDs: slice.Map(c.Offers, func(idx int, src domain.Offer) int64 {
				return src.ID
			}),
			Codes: slice.Map(c.Vouchers, func(idx int, src domain.Voucher) string {
				return src.Code
			}),
		},
	}, nil
}

func (h *AdminHandler) AssignCodes(ctx *ginx.Context, req AssignCodesReq, _ session.Session) (ginx.Result, error) {
	as, err := h.svc.AssignCodes(ctx.Request.Context(), req.Codes, req.Emails)
	switch {
	case errors.Is(err, domain.ErrInsufficientSlots):
		return insufficientSlotsResult, err
	case errors.Is(err, service.ErrVoucherNotFound):
		return voucherNotFoundResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("分配兑换码失败: %w", err)
	}
	return ginx.Result{Data: h.toAssignmentVOs(as)}, nil
}

func (h *AdminHandler) RevokeAssignment(ctx *ginx.Context, req RevokeAssignmentReq, _ session.Session) (ginx.Result, error) {
	err := h.svc.RevokeAssignment(ctx.Request.Context(), req.OfferID, req.Code, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return assignmentNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("撤销兑换码分配失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) ListAssignments(ctx *ginx.Context, req ListAssignmentsReq, _ session.Session) (ginx.Result, error) {
	as, total, err := h.svc.ListAssignments(ctx.Request.Context(), req.OfferID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取兑换码分配记录失败: %w", err)
	}
	return ginx.Result{
		Data: AssignmentList{
			Total:       total,
			Assignments: h.toAssignmentVOs(as),
		},
	}, nil
}

func (h *AdminHandler) toAssignmentVOs(as []domain.Assignment) []Assignment {
	return slice.Map(as, func(idx int, src domain.Assignment) Assignment {
		return Assignment{
			ID:        src.ID,
			OfferID:   src.OfferID,
			Code:      src.Code,
			UserEmail: src.UserEmail,
			Status:    src.Status.String(),
			Utime:     src.Utime,
		}
	})
}
