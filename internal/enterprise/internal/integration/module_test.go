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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/ecommerce/internal/enterprise"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/errs"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/event"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/integration/startup"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/web"
	"github.com/ecodeclub/ecommerce/internal/test"
	testioc "github.com/ecodeclub/ecommerce/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	testCustomerUUID = "e3c3f4b5-1f2a-4c1b-9d6e-0a1b2c3d4e5f"
	testCatalogUUID  = "8d1f0c4a-6b2e-4a7f-9c3d-5e6f7a8b9c0d"
	otherCustomer    = "0b7f4f3e-2d1c-4e5a-8b9c-1d2e3f4a5b6c"
	testCourseRun    = "course-v1:edX+DemoX+Demo_Course"
	testPartnerID    = 10
)

func TestEnterpriseModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db     *egorm.Component
	q      mq.MQ
	oracle *httptest.Server
	module *enterprise.Module
	admin  *egin.Component
}

func (s *ModuleTestSuite) SetupSuite() {
	s.oracle = httptest.NewServer(http.HandlerFunc(s.serveOracle))
	module, err := startup.InitModule(enterprise.Switches{
		EnterpriseOffers:           true,
		EnterpriseOffersForCoupons: true,
	}, enterprise.OracleConfig{
		BaseURL:  s.oracle.URL,
		Timeout:  time.Second,
		CacheTTL: time.Second,
	}, enterprise.Sites{
		{ID: 1, Domain: "ecommerce.example.com", PartnerID: testPartnerID},
	})
	s.NoError(err)
	s.module = module
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()

	econf.Set("admin", map[string]any{"contextTimeout": "1s"})
	s.admin = egin.Load("admin").Build()
	s.admin.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{"admin": "true"},
		}))
	})
	module.AdminHdl.PrivateRoutes(s.admin.Engine)
}

func (s *ModuleTestSuite) TearDownSuite() {
	s.oracle.Close()
	for _, table := range s.tables() {
		s.NoError(s.db.Exec(fmt.Sprintf("DROP TABLE `%s`", table)).Error)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range s.tables() {
		s.NoError(s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error)
	}
}

func (s *ModuleTestSuite) tables() []string {
	return []string{"conditions", "offers", "vouchers", "voucher_offers", "offer_assignments", "redemption_logs"}
}

// serveOracle ent_ 开头的用户是测试企业的学员，other_ 开头的是其他企业的学员。
// 目录里只有 testCourseRun
func (s *ModuleTestSuite) serveOracle(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/enterprise-learner/":
		username := r.URL.Query().Get("username")
		customer := ""
		switch {
		case strings.HasPrefix(username, "ent_"):
			customer = testCustomerUUID
		case strings.HasPrefix(username, "other_"):
			customer = otherCustomer
		default:
			_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
			return
		}
		_, _ = fmt.Fprintf(w, `{"count":1,"results":[{"enterprise_customer":{"uuid":"%s","name":"Acme","active":true},"user":{"username":"%s"}}]}`,
			customer, username)
	case "/enterprise_catalogs/" + testCatalogUUID + "/contains_content_items/",
		"/enterprise-customer/" + testCustomerUUID + "/contains_content_items/":
		contains := true
		for _, id := range r.URL.Query()["course_run_ids"] {
			contains = contains && id == testCourseRun
		}
		_, _ = fmt.Fprintf(w, `{"contains_content_items":%t}`, contains)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *ModuleTestSuite) newGinServer(uid int64, username, email string) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
			Data: map[string]string{
				"username": username,
				"email":    email,
			},
		}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	return server
}

func (s *ModuleTestSuite) createCoupon(t *testing.T, req web.CreateCouponReq) web.CreateCouponResp {
	t.Helper()
	httpReq, err := http.NewRequest(http.MethodPost, "/enterprise/coupon/create", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateCouponResp]()
	s.admin.ServeHTTP(recorder, httpReq)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	require.Zero(t, res.Code, res.Msg)
	return res.Data
}

func (s *ModuleTestSuite) couponReq(usage domain.UsagePolicy, quantity int, maxUses int64) web.CreateCouponReq {
	return web.CreateCouponReq{
		Name:                          "企业兑换码",
		PartnerID:                     testPartnerID,
		OfferType:                     string(domain.OfferTypeVoucher),
		Usage:                         string(usage),
		Quantity:                      quantity,
		MaxGlobalApplications:         maxUses,
		EnterpriseCustomerUUID:        testCustomerUUID,
		EnterpriseCustomerName:        "Acme",
		EnterpriseCustomerCatalogUUID: testCatalogUUID,
	}
}

func (s *ModuleTestSuite) basket(uid int64, username, email, code string) domain.Basket {
	return domain.Basket{
		ID:    uid,
		Site:  domain.Site{ID: 1, Domain: "ecommerce.example.com", PartnerID: testPartnerID},
		Owner: &domain.User{ID: uid, Username: username, Email: email},
		Lines: []domain.Line{{
			Product: domain.Product{
				ID:    1,
				Title: "Demo Course",
				Attrs: domain.ProductAttrs{CourseKey: testCourseRun, CertificateType: "verified"},
			},
			Quantity:  1,
			UnitPrice: decimal.NewFromInt(100),
		}},
		Vouchers: []domain.Voucher{{Code: code}},
	}
}

func (s *ModuleTestSuite) TestAdminHandler_CreateCoupon() {
	t := s.T()
	testCases := []struct {
		name     string
		req      web.CreateCouponReq
		wantCode int
		after    func(t *testing.T, resp web.CreateCouponResp)
	}{
		{
			name:     "单次使用的兑换码每个一个优惠",
			req:      s.couponReq(domain.UsageSingleUse, 3, 0),
			wantCode: 0,
			after: func(t *testing.T, resp web.CreateCouponResp) {
				assert.Len(t, resp.Codes, 3)
				assert.Len(t, resp.OfferIDs, 3)
				var vouchers []dao.Voucher
				require.NoError(t, s.db.Where("code IN ?", resp.Codes).Find(&vouchers).Error)
				assert.Len(t, vouchers, 3)
				for _, v := range vouchers {
					assert.Equal(t, string(domain.UsageSingleUse), v.Usage)
					assert.Zero(t, v.NumOrders)
				}
			},
		},
		{
			name:     "多次使用的兑换码共用一个优惠",
			req:      s.couponReq(domain.UsageMultiUse, 2, 5),
			wantCode: 0,
			after: func(t *testing.T, resp web.CreateCouponResp) {
				assert.Len(t, resp.Codes, 2)
				require.Len(t, resp.OfferIDs, 1)
				var o dao.Offer
				require.NoError(t, s.db.Where("id = ?", resp.OfferIDs[0]).First(&o).Error)
				assert.Equal(t, int64(5), o.MaxGlobalApplications)
				assert.Equal(t, int64(testPartnerID), o.PartnerId)
			},
		},
		{
			name:     "使用策略不合法",
			req:      s.couponReq("Unknown", 1, 0),
			wantCode: errs.InvalidUsagePolicyError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/enterprise/coupon/create", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.CreateCouponResp]()
			s.admin.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			require.Equal(t, tc.wantCode, res.Code)
			if tc.after != nil {
				tc.after(t, res.Data)
			}
		})
	}
}

func (s *ModuleTestSuite) TestAssignAndCheckVoucher() {
	t := s.T()
	coupon := s.createCoupon(t, s.couponReq(domain.UsageSingleUse, 2, 0))

	assign := func(t *testing.T, emails []string) test.Result[[]web.Assignment] {
		req, err := http.NewRequest(http.MethodPost, "/enterprise/assignment/assign", iox.NewJSONReader(web.AssignCodesReq{
			Codes:  coupon.Codes,
			Emails: emails,
		}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[[]web.Assignment]()
		s.admin.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		return recorder.MustScan()
	}
	res := assign(t, []string{"ent_a@example.com", "ent_b@example.com"})
	require.Zero(t, res.Code, res.Msg)
	require.Len(t, res.Data, 2)

	// 两个兑换码都已经分配出去了
	res = assign(t, []string{"ent_c@example.com"})
	assert.Equal(t, errs.InsufficientSlotsError.Code, res.Code)

	codeA := s.assignedCode(t, "ent_a@example.com")

	testCases := []struct {
		name     string
		uid      int64
		username string
		email    string
		code     string

		wantResp test.Result[web.CheckVoucherResp]
	}{
		{
			name:     "被分配的学员",
			uid:      1001,
			username: "ent_a",
			email:    "ENT_A@example.com",
			code:     codeA,
			wantResp: test.Result[web.CheckVoucherResp]{
				Data: web.CheckVoucherResp{Satisfied: true, Reason: string(domain.ReasonAssigned)},
			},
		},
		{
			name:     "同企业的其他学员没有空余名额",
			uid:      1002,
			username: "ent_c",
			email:    "ent_c@example.com",
			code:     codeA,
			wantResp: test.Result[web.CheckVoucherResp]{
				Data: web.CheckVoucherResp{Reason: string(domain.ReasonNoFreeSlot)},
			},
		},
		{
			name:     "其他企业的学员",
			uid:      1003,
			username: "other_a",
			email:    "ent_a@example.com",
			code:     codeA,
			wantResp: test.Result[web.CheckVoucherResp]{
				Data: web.CheckVoucherResp{Reason: string(domain.ReasonWrongEnterprise)},
			},
		},
		{
			name:     "还没有关联企业的学员凭分配的兑换码使用",
			uid:      1004,
			username: "newcomer",
			email:    "ent_b@example.com",
			code:     s.assignedCode(t, "ent_b@example.com"),
			wantResp: test.Result[web.CheckVoucherResp]{
				Data: web.CheckVoucherResp{Satisfied: true, Reason: string(domain.ReasonAssigned)},
			},
		},
		{
			name:     "兑换码不存在",
			uid:      1001,
			username: "ent_a",
			email:    "ent_a@example.com",
			code:     "NOT_EXIST",
			wantResp: test.Result[web.CheckVoucherResp]{
				Code: errs.VoucherNotFoundError.Code,
				Msg:  errs.VoucherNotFoundError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := s.newGinServer(tc.uid, tc.username, tc.email)
			req, err := http.NewRequest(http.MethodPost, "/enterprise/voucher/check", iox.NewJSONReader(web.CheckVoucherReq{
				Code: tc.code,
				Lines: []web.Line{{
					ProductID: 1,
					CourseKey: testCourseRun,
					Quantity:  1,
					UnitPrice: "100.00",
				}},
				Catalog: testCatalogUUID,
			}))
			require.NoError(t, err)
			req.Host = "ecommerce.example.com"
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.CheckVoucherResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *ModuleTestSuite) assignedCode(t *testing.T, email string) string {
	t.Helper()
	var a dao.OfferAssignment
	require.NoError(t, s.db.Where("user_email = ?", email).First(&a).Error)
	return a.Code
}

func (s *ModuleTestSuite) TestRedemptionService_RedeemConcurrently() {
	t := s.T()
	coupon := s.createCoupon(t, s.couponReq(domain.UsageMultiUse, 1, 3))
	code := coupon.Codes[0]

	const n = 6
	var succeeded, exhausted atomic.Int64
	var eg errgroup.Group
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			uid := int64(2000 + i)
			basket := s.basket(uid, fmt.Sprintf("ent_%d", uid), fmt.Sprintf("ent_%d@example.com", uid), code)
			_, err := s.module.RedemptionSvc.Redeem(context.Background(), fmt.Sprintf("ORDER-%d", uid), basket)
			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, enterprise.ErrCodeExhausted):
				exhausted.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, int64(3), succeeded.Load())
	assert.Equal(t, int64(n-3), exhausted.Load())

	var v dao.Voucher
	require.NoError(t, s.db.Where("code = ?", code).First(&v).Error)
	assert.Equal(t, int64(3), v.NumOrders)
	var logs int64
	require.NoError(t, s.db.Model(&dao.RedemptionLog{}).Where("code = ?", code).Count(&logs).Error)
	assert.Equal(t, int64(3), logs)
}

func (s *ModuleTestSuite) TestOrderEventConsumer() {
	t := s.T()
	coupon := s.createCoupon(t, s.couponReq(domain.UsageOncePerCustomer, 1, 0))
	code := coupon.Codes[0]

	producer, err := s.q.Producer(event.OrderPlacedEventName)
	require.NoError(t, err)
	evt := event.OrderPlacedEvent{
		OrderSN:  "ORDER-3001",
		BasketID: 3001,
		Site:     event.Site{ID: 1, Domain: "ecommerce.example.com", PartnerID: testPartnerID},
		Owner:    event.Owner{ID: 3001, Username: "ent_consumer", Email: "ent_consumer@example.com"},
		Lines: []event.Line{{
			ProductID: 1,
			CourseKey: testCourseRun,
			Quantity:  1,
			UnitPrice: "100.00",
		}},
		VoucherCodes: []string{code},
	}
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var l dao.RedemptionLog
		err := s.db.Where("code = ? AND order_sn = ?", code, evt.OrderSN).First(&l).Error
		return err == nil && l.Uid == evt.Owner.ID && l.NumOrders == 1
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *ModuleTestSuite) TestAdminHandler_RevokeAndList() {
	t := s.T()
	coupon := s.createCoupon(t, s.couponReq(domain.UsageMultiUse, 1, 2))
	as, err := s.module.AdminSvc.AssignCodes(context.Background(), coupon.Codes,
		[]string{"ent_x@example.com", "ent_y@example.com"})
	require.NoError(t, err)
	require.Len(t, as, 2)

	revoke := func(email string) test.Result[any] {
		req, err := http.NewRequest(http.MethodPost, "/enterprise/assignment/revoke", iox.NewJSONReader(web.RevokeAssignmentReq{
			OfferID: coupon.OfferIDs[0],
			Code:    coupon.Codes[0],
			Email:   email,
		}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[any]()
		s.admin.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		return recorder.MustScan()
	}
	assert.Zero(t, revoke("ent_x@example.com").Code)
	assert.Equal(t, errs.AssignmentNotFoundError.Code, revoke("ent_z@example.com").Code)

	req, err := http.NewRequest(http.MethodPost, "/enterprise/assignment/list", iox.NewJSONReader(web.ListAssignmentsReq{
		OfferID: coupon.OfferIDs[0],
		Limit:   10,
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.AssignmentList]()
	s.admin.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	require.Equal(t, int64(2), res.Data.Total)
	statuses := make(map[string]string, 2)
	for _, a := range res.Data.Assignments {
		statuses[a.UserEmail] = a.Status
	}
	assert.Equal(t, map[string]string{
		"ent_x@example.com": string(domain.AssignmentStatusRevoked),
		"ent_y@example.com": string(domain.AssignmentStatusPending),
	}, statuses)
}
