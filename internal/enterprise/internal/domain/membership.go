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

type EnterpriseCustomer struct {
	UUID   string
	Name   string
	Active bool
}

// Membership 学员与企业客户的关联关系
type Membership struct {
	Username           string
	EnterpriseCustomer EnterpriseCustomer
}

// Switches 企业优惠相关的开关，在构造时注入
type Switches struct {
	EnterpriseOffers           bool
	EnterpriseOffersForCoupons bool
}
