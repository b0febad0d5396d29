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
	"fmt"
	"net"
	"strings"
)

type OfferType string

const (
	// OfferTypeSite 站点级优惠，对站点上所有满足条件的购物车生效
	OfferTypeSite OfferType = "Site"
	// OfferTypeVoucher 兑换码优惠，需要在购物车中使用兑换码
	OfferTypeVoucher OfferType = "Voucher"
)

type ConditionType string

const (
	ConditionTypeEnterpriseCustomer           ConditionType = "enterprise_customer"
	ConditionTypeAssignableEnterpriseCustomer ConditionType = "assignable_enterprise_customer"
)

type Partner struct {
	ID        int64
	ShortCode string
	Name      string
}

type Site struct {
	ID        int64
	Domain    string
	PartnerID int64
}

// Sites 部署的站点，站点和合作方的对应关系只来自配置
type Sites []Site

// Lookup 按照请求的 Host 查找站点，忽略端口和大小写
func (s Sites) Lookup(host string) (Site, bool) {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	for _, site := range s {
		if strings.EqualFold(site.Domain, host) {
			return site, true
		}
	}
	return Site{}, false
}

// Condition 企业客户条件
type Condition struct {
	ID   int64
	Type ConditionType
	// EnterpriseCustomerUUID 必填
	EnterpriseCustomerUUID string
	// EnterpriseCustomerCatalogUUID 为空表示该企业下的任意目录
	EnterpriseCustomerCatalogUUID string
	EnterpriseCustomerName        string
	Ctime                         int64
	Utime                         int64
}

func (c Condition) Name() string {
	return fmt.Sprintf("Basket contains a seat from %s's catalog", c.EnterpriseCustomerName)
}

func (c Condition) Assignable() bool {
	return c.Type == ConditionTypeAssignableEnterpriseCustomer
}

type Offer struct {
	ID        int64
	Name      string
	PartnerID int64
	Type      OfferType
	Condition Condition
	// MaxGlobalApplications 0 表示没有设置
	MaxGlobalApplications int64
	Ctime                 int64
	Utime                 int64
}
