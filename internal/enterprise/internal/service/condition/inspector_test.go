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
	"net/url"
	"testing"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/stretchr/testify/assert"
)

const (
	testCustomerUUID = "e3c3f4b5-1f2a-4c1b-9d6e-0a1b2c3d4e5f"
	testCatalogUUID  = "8d1f0c4a-6b2e-4a7f-9c3d-5e6f7a8b9c0d"
)

func TestCourseRunIDs(t *testing.T) {
	basket := domain.Basket{
		Lines: []domain.Line{
			{Product: domain.Product{ID: 1, Attrs: domain.ProductAttrs{CourseKey: "course-v1:edX+DemoX+Demo"}}},
			{Product: domain.Product{ID: 2}},
			{Product: domain.Product{ID: 3, Attrs: domain.ProductAttrs{CourseKey: "course-v1:edX+Other+2024"}}},
			{Product: domain.Product{ID: 4, Attrs: domain.ProductAttrs{CourseKey: "course-v1:edX+DemoX+Demo"}}},
		},
	}
	assert.Equal(t, []string{"course-v1:edX+DemoX+Demo", "course-v1:edX+Other+2024"}, CourseRunIDs(basket))
	run, ok := CourseRun(basket)
	assert.True(t, ok)
	assert.Equal(t, "course-v1:edX+DemoX+Demo", run)

	_, ok = CourseRun(domain.Basket{Lines: []domain.Line{{Product: domain.Product{ID: 2}}}})
	assert.False(t, ok)
	assert.Empty(t, CourseRunIDs(domain.Basket{}))
}

func TestResolveCatalog(t *testing.T) {
	other := "11111111-2222-3333-4444-555555555555"
	testCases := []struct {
		name       string
		cond       domain.Condition
		query      url.Values
		attributes map[string]string

		wantCatalog string
		wantOK      bool
	}{
		{
			name:        "都没有使用条件上的目录",
			cond:        domain.Condition{EnterpriseCustomerCatalogUUID: testCatalogUUID},
			wantCatalog: testCatalogUUID,
			wantOK:      true,
		},
		{
			name:        "都没有且条件上也没有",
			cond:        domain.Condition{},
			wantCatalog: "",
			wantOK:      true,
		},
		{
			name:        "请求参数中的目录",
			cond:        domain.Condition{EnterpriseCustomerCatalogUUID: testCatalogUUID},
			query:       url.Values{domain.QueryParamCatalog: []string{testCatalogUUID}},
			wantCatalog: testCatalogUUID,
			wantOK:      true,
		},
		{
			name:        "购物车属性中的目录",
			cond:        domain.Condition{EnterpriseCustomerCatalogUUID: testCatalogUUID},
			attributes:  map[string]string{domain.BasketAttributeEnterpriseCatalog: testCatalogUUID},
			wantCatalog: testCatalogUUID,
			wantOK:      true,
		},
		{
			name:       "请求参数优先于购物车属性",
			cond:       domain.Condition{EnterpriseCustomerCatalogUUID: testCatalogUUID},
			query:      url.Values{domain.QueryParamCatalog: []string{other}},
			attributes: map[string]string{domain.BasketAttributeEnterpriseCatalog: testCatalogUUID},
			wantOK:     false,
		},
		{
			name:        "条件上没有配置目录时接受任意合法目录",
			cond:        domain.Condition{},
			query:       url.Values{domain.QueryParamCatalog: []string{other}},
			wantCatalog: other,
			wantOK:      true,
		},
		{
			name:   "与条件上的目录不一致",
			cond:   domain.Condition{EnterpriseCustomerCatalogUUID: testCatalogUUID},
			query:  url.Values{domain.QueryParamCatalog: []string{other}},
			wantOK: false,
		},
		{
			name:   "不是合法的UUID",
			cond:   domain.Condition{EnterpriseCustomerCatalogUUID: testCatalogUUID},
			query:  url.Values{domain.QueryParamCatalog: []string{"INVALID_UUID_STRING"}},
			wantOK: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			basket := domain.Basket{Query: tc.query, Attributes: tc.attributes}
			catalog, ok := ResolveCatalog(tc.cond, basket)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantCatalog, catalog)
		})
	}
}

func TestBasketAddEnterpriseCatalogAttribute(t *testing.T) {
	basket := domain.Basket{}
	BasketAddEnterpriseCatalogAttribute(&basket, map[string]string{domain.QueryParamCatalog: testCatalogUUID})
	assert.Equal(t, testCatalogUUID, basket.Attributes[domain.BasketAttributeEnterpriseCatalog])

	BasketAddEnterpriseCatalogAttribute(&basket, map[string]string{})
	_, ok := basket.Attributes[domain.BasketAttributeEnterpriseCatalog]
	assert.False(t, ok)
}
