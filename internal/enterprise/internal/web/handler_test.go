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
	"net/http"
	"testing"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/errs"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service"
	svcmocks "github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/mocks"
	"github.com/ecodeclub/ecommerce/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUid     = 123
	testCatalog = "8d1f0c4a-6b2e-4a7f-9c3d-5e6f7a8b9c0d"
	testHost    = "ecommerce.example.com"
)

var testSites = domain.Sites{
	{ID: 1, Domain: testHost, PartnerID: 10},
	{ID: 2, Domain: "other.example.com", PartnerID: 20},
}

func newGinServer(routes func(server *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUid,
			Data: map[string]string{
				"username": "learner",
				"email":    "learner@example.com",
			},
		}))
	})
	routes(server)
	return server
}

func TestHandler_CheckVoucher(t *testing.T) {
	testCases := []struct {
		name string
		host string
		req  CheckVoucherReq
		mock func(ctrl *gomock.Controller) service.Service

		wantResp test.Result[CheckVoucherResp]
	}{
		{
			name: "可以使用",
			host: testHost,
			req: CheckVoucherReq{
				Code:    "AAA",
				Lines:   []Line{{ProductID: 1, CourseKey: "course-v1:edX+DemoX+Demo", Quantity: 1, UnitPrice: "100"}},
				Catalog: testCatalog,
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().CheckVoucher(gomock.Any(), "AAA", gomock.Any()).
					DoAndReturn(func(_ any, _ string, basket domain.Basket) (domain.Decision, error) {
						assert.Equal(t, int64(testUid), basket.Owner.ID)
						assert.Equal(t, "learner@example.com", basket.Owner.Email)
						assert.Equal(t, testCatalog, basket.Query.Get(domain.QueryParamCatalog))
						assert.Equal(t, testCatalog, basket.Attributes[domain.BasketAttributeEnterpriseCatalog])
						assert.Equal(t, testSites[0], basket.Site)
						return domain.Satisfied(domain.ReasonFreeSlot), nil
					})
				return svc
			},
			wantResp: test.Result[CheckVoucherResp]{
				Data: CheckVoucherResp{Satisfied: true, Reason: "free_slot"},
			},
		},
		{
			name: "合作方由请求的站点决定",
			host: "Other.Example.com:8080",
			req:  CheckVoucherReq{Code: "AAA"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().CheckVoucher(gomock.Any(), "AAA", gomock.Any()).
					DoAndReturn(func(_ any, _ string, basket domain.Basket) (domain.Decision, error) {
						assert.Equal(t, int64(20), basket.Site.PartnerID)
						return domain.Rejected(domain.ReasonPartnerMismatch), nil
					})
				return svc
			},
			wantResp: test.Result[CheckVoucherResp]{
				Data: CheckVoucherResp{Satisfied: false, Reason: "partner_mismatch"},
			},
		},
		{
			name: "站点不存在",
			host: "evil.example.com",
			req:  CheckVoucherReq{Code: "AAA"},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantResp: test.Result[CheckVoucherResp]{
				Code: errs.SiteNotFoundError.Code,
				Msg:  errs.SiteNotFoundError.Msg,
			},
		},
		{
			name: "兑换码不存在",
			host: testHost,
			req:  CheckVoucherReq{Code: "AAA"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().CheckVoucher(gomock.Any(), "AAA", gomock.Any()).
					Return(domain.Rejected(domain.ReasonNoVoucher), service.ErrVoucherNotFound)
				return svc
			},
			wantResp: test.Result[CheckVoucherResp]{
				Code: errs.VoucherNotFoundError.Code,
				Msg:  errs.VoucherNotFoundError.Msg,
			},
		},
		{
			name: "价格不合法",
			host: testHost,
			req: CheckVoucherReq{
				Code:  "AAA",
				Lines: []Line{{ProductID: 1, Quantity: 1, UnitPrice: "abc"}},
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantResp: test.Result[CheckVoucherResp]{
				Code: errs.InvalidBasketError.Code,
				Msg:  errs.InvalidBasketError.Msg,
			},
		},
		{
			name: "系统错误",
			host: testHost,
			req:  CheckVoucherReq{Code: "AAA"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().CheckVoucher(gomock.Any(), "AAA", gomock.Any()).
					Return(domain.Decision{}, errors.New("mock db error"))
				return svc
			},
			wantResp: test.Result[CheckVoucherResp]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newGinServer(NewHandler(tc.mock(ctrl), testSites).PrivateRoutes)

			req, err := http.NewRequest(http.MethodPost, "/enterprise/voucher/check", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Host = tc.host
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[CheckVoucherResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestAdminHandler_AssignCodes(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) service.AdminService

		wantResp test.Result[[]Assignment]
	}{
		{
			name: "分配成功",
			mock: func(ctrl *gomock.Controller) service.AdminService {
				svc := svcmocks.NewMockAdminService(ctrl)
				svc.EXPECT().AssignCodes(gomock.Any(), []string{"AAA"}, []string{"test1@example.com"}).
					Return([]domain.Assignment{{
						ID:        1,
						OfferID:   2,
						Code:      "AAA",
						UserEmail: "test1@example.com",
						Status:    domain.AssignmentStatusPending,
					}}, nil)
				return svc
			},
			wantResp: test.Result[[]Assignment]{
				Data: []Assignment{{ID: 1, OfferID: 2, Code: "AAA", UserEmail: "test1@example.com", Status: "EMAIL_PENDING"}},
			},
		},
		{
			name: "容量不足",
			mock: func(ctrl *gomock.Controller) service.AdminService {
				svc := svcmocks.NewMockAdminService(ctrl)
				svc.EXPECT().AssignCodes(gomock.Any(), []string{"AAA"}, []string{"test1@example.com"}).
					Return(nil, domain.ErrInsufficientSlots)
				return svc
			},
			wantResp: test.Result[[]Assignment]{
				Code: errs.InsufficientSlotsError.Code,
				Msg:  errs.InsufficientSlotsError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newGinServer(NewAdminHandler(tc.mock(ctrl)).PrivateRoutes)

			req, err := http.NewRequest(http.MethodPost, "/enterprise/assignment/assign", iox.NewJSONReader(AssignCodesReq{
				Codes:  []string{"AAA"},
				Emails: []string{"test1@example.com"},
			}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[[]Assignment]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
