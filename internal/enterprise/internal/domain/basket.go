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

package domain

import (
	"net/url"

	"github.com/shopspring/decimal"
)

// BasketAttributeEnterpriseCatalog 购物车上记录企业目录的属性
const BasketAttributeEnterpriseCatalog = "enterprise_customer_catalog_uuid"

// QueryParamCatalog 请求中携带企业目录的参数
const QueryParamCatalog = "catalog"

type User struct {
	ID       int64
	Username string
	Email    string
}

type ProductAttrs struct {
	// CourseKey 课程 run 的 ID，只有课程座位商品才有
	CourseKey              string
	CertificateType        string
	IDVerificationRequired bool
}

type Product struct {
	ID    int64
	Title string
	Attrs ProductAttrs
}

// IsSeat 是否是课程座位
func (p Product) IsSeat() bool {
	return p.Attrs.CourseKey != ""
}

type Line struct {
	Product   Product
	Quantity  int64
	UnitPrice decimal.Decimal
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

type Basket struct {
	ID   int64
	Site Site
	// Owner 为 nil 表示匿名购物车
	Owner      *User
	Lines      []Line
	Vouchers   []Voucher
	Attributes map[string]string
	// Query 当前请求的查询参数
	Query url.Values
}

func (b Basket) IsEmpty() bool {
	return len(b.Lines) == 0
}

func (b Basket) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		total = total.Add(l.Total())
	}
	return total
}

func (b Basket) Anonymous() bool {
	return b.Owner == nil
}

// Voucher 购物车上使用的第一个兑换码
func (b Basket) Voucher() (Voucher, bool) {
	if len(b.Vouchers) == 0 {
		return Voucher{}, false
	}
	return b.Vouchers[0], true
}
