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

package oracle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCustomerUUID = "e3c3f4b5-1f2a-4c1b-9d6e-0a1b2c3d4e5f"
	testCatalogUUID  = "8d1f0c4a-6b2e-4a7f-9c3d-5e6f7a8b9c0d"
)

var testSite = domain.Site{ID: 1, Domain: "ecommerce.example.com", PartnerID: 10}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPClient(Config{
		BaseURL: server.URL + "/",
		Token:   "mock-token",
		Timeout: time.Second,
	})
}

func TestHTTPClient_EnterpriseLearner(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc

		wantRes domain.Membership
		wantErr error
	}{
		{
			name: "企业学员",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/enterprise-learner/", r.URL.Path)
				assert.Equal(t, "learner", r.URL.Query().Get("username"))
				assert.Equal(t, "JWT mock-token", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(`{"count":1,"results":[{"enterprise_customer":{"uuid":"` + testCustomerUUID +
					`","name":"Acme","active":true},"user":{"username":"learner"}}]}`))
			},
			wantRes: domain.Membership{
				Username: "learner",
				EnterpriseCustomer: domain.EnterpriseCustomer{
					UUID:   testCustomerUUID,
					Name:   "Acme",
					Active: true,
				},
			},
		},
		{
			name: "没有关联企业",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
			},
			wantErr: ErrLearnerNotFound,
		},
		{
			name: "服务端错误",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("internal error"))
			},
			wantErr: ErrUnexpectedStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, tc.handler)
			res, err := client.EnterpriseLearner(context.Background(), testSite, domain.User{ID: 1, Username: "learner"})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestHTTPClient_CatalogContainsCourseRuns(t *testing.T) {
	testCases := []struct {
		name    string
		catalog string
		handler http.HandlerFunc

		wantRes bool
		wantErr error
	}{
		{
			name:    "指定目录",
			catalog: testCatalogUUID,
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/enterprise_catalogs/"+testCatalogUUID+"/contains_content_items/", r.URL.Path)
				assert.Equal(t, []string{"run-1", "run-2"}, r.URL.Query()["course_run_ids"])
				_, _ = w.Write([]byte(`{"contains_content_items":true}`))
			},
			wantRes: true,
		},
		{
			name: "企业下任意目录",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/enterprise-customer/"+testCustomerUUID+"/contains_content_items/", r.URL.Path)
				_, _ = w.Write([]byte(`{"contains_content_items":false}`))
			},
			wantRes: false,
		},
		{
			name:    "服务端错误",
			catalog: testCatalogUUID,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: ErrUnexpectedStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, tc.handler)
			res, err := client.CatalogContainsCourseRuns(context.Background(), testSite,
				testCustomerUUID, tc.catalog, []string{"run-1", "run-2"})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestHTTPClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewHTTPClient(Config{BaseURL: server.URL, Timeout: time.Second})
	_, err := client.EnterpriseLearner(context.Background(), testSite, domain.User{Username: "learner"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLearnerNotFound)
}
