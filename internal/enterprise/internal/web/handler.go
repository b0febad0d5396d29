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
	"net/url"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/condition"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	sites domain.Sites
}

func NewHandler(svc service.Service, sites domain.Sites) *Handler {
	return &Handler{svc: svc, sites: sites}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/enterprise")
	g.POST("/voucher/check", ginx.BS[CheckVoucherReq](h.CheckVoucher))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CheckVoucher 预判当前用户的购物车能否使用兑换码，不会占用兑换码
func (h *Handler) CheckVoucher(ctx *ginx.Context, req CheckVoucherReq, sess session.Session) (ginx.Result, error) {
	site, ok := h.sites.Lookup(ctx.Request.Host)
	if !ok {
		return siteNotFoundResult, fmt.Errorf("站点不存在 %s", ctx.Request.Host)
	}
	claims := sess.Claims()
	basket, err := h.toBasket(req, site, &domain.User{
		ID:       claims.Uid,
		Username: claims.Get("username").StringOrDefault(""),
		Email:    claims.Get("email").StringOrDefault(""),
	})
	if err != nil {
		return invalidBasketResult, err
	}
	d, err := h.svc.CheckVoucher(ctx.Request.Context(), req.Code, basket)
	if err != nil {
		if errors.Is(err, service.ErrVoucherNotFound) {
			return voucherNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("判定兑换码失败: %w", err)
	}
	return ginx.Result{
		Data: CheckVoucherResp{
			Satisfied: d.Satisfied,
			Reason:    string(d.Reason),
		},
	}, nil
}

func (h *Handler) toBasket(req CheckVoucherReq, site domain.Site, owner *domain.User) (domain.Basket, error) {
	lines := make([]domain.Line, 0, len(req.Lines))
	for _, l := range req.Lines {
		price, err := decimal.NewFromString(l.UnitPrice)
		if err != nil {
			return domain.Basket{}, fmt.Errorf("商品价格不合法 %s: %w", l.UnitPrice, err)
		}
		lines = append(lines, domain.Line{
			Product: domain.Product{
				ID:    l.ProductID,
				Title: l.Title,
				Attrs: domain.ProductAttrs{
					CourseKey:       l.CourseKey,
					CertificateType: l.CertificateType,
				},
			},
			Quantity:  l.Quantity,
			UnitPrice: price,
		})
	}
	basket := domain.Basket{
		Site:       site,
		Owner:      owner,
		Lines:      lines,
		Attributes: req.Attributes,
		Query:      url.Values{},
	}
	if req.Catalog != "" {
		basket.Query.Set(domain.QueryParamCatalog, req.Catalog)
	}
	condition.BasketAddEnterpriseCatalogAttribute(&basket, map[string]string{
		domain.QueryParamCatalog: req.Catalog,
	})
	return basket, nil
}
