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
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/google/uuid"
)

// CourseRunIDs 购物车中所有课程座位对应的课程 run ID，去重并保持顺序
func CourseRunIDs(basket domain.Basket) []string {
	seen := make(map[string]struct{}, len(basket.Lines))
	res := make([]string, 0, len(basket.Lines))
	for _, l := range basket.Lines {
		if !l.Product.IsSeat() {
			continue
		}
		key := l.Product.Attrs.CourseKey
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, key)
	}
	return res
}

// CourseRun 购物车中第一个课程座位的课程 run ID
func CourseRun(basket domain.Basket) (string, bool) {
	for _, l := range basket.Lines {
		if l.Product.IsSeat() {
			return l.Product.Attrs.CourseKey, true
		}
	}
	return "", false
}

// ResolveCatalog 确定本次判定使用的企业目录。
// 优先使用请求参数，其次是购物车属性，都没有的时候使用条件上配置的目录，
// 条件上也没有配置时返回空串，表示企业客户下的任意目录。
// 请求参数或者购物车属性中的目录不是合法的 UUID，或者与条件上的目录不一致时，返回 false。
func ResolveCatalog(cond domain.Condition, basket domain.Basket) (string, bool) {
	candidate := basket.Query.Get(domain.QueryParamCatalog)
	if candidate == "" {
		candidate = basket.Attributes[domain.BasketAttributeEnterpriseCatalog]
	}
	if candidate == "" {
		return cond.EnterpriseCustomerCatalogUUID, true
	}
	requested, err := uuid.Parse(candidate)
	if err != nil {
		return "", false
	}
	if cond.EnterpriseCustomerCatalogUUID == "" {
		return requested.String(), true
	}
	configured, err := uuid.Parse(cond.EnterpriseCustomerCatalogUUID)
	if err != nil || configured != requested {
		return "", false
	}
	return requested.String(), true
}

// BasketAddEnterpriseCatalogAttribute 把请求中的企业目录记录到购物车上，
// 请求中没有企业目录时删除购物车上已有的记录
func BasketAddEnterpriseCatalogAttribute(basket *domain.Basket, requestData map[string]string) {
	catalog := requestData[domain.QueryParamCatalog]
	if catalog == "" {
		delete(basket.Attributes, domain.BasketAttributeEnterpriseCatalog)
		return
	}
	if basket.Attributes == nil {
		basket.Attributes = make(map[string]string, 1)
	}
	basket.Attributes[domain.BasketAttributeEnterpriseCatalog] = catalog
}

func sameUUID(a, b string) bool {
	ua, err := uuid.Parse(a)
	if err != nil {
		return false
	}
	ub, err := uuid.Parse(b)
	if err != nil {
		return false
	}
	return ua == ub
}
