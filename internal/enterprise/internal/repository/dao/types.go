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

package dao

import "github.com/ecodeclub/ekit/sqlx"

type Condition struct {
	Id                            int64  `gorm:"primaryKey;autoIncrement;comment:条件自增ID"`
	Type                          string `gorm:"type:varchar(64);not null;comment:条件类型 enterprise_customer/assignable_enterprise_customer"`
	EnterpriseCustomerUuid        string `gorm:"type:varchar(36);not null;index:idx_enterprise_customer_uuid;comment:企业客户UUID"`
	EnterpriseCustomerCatalogUuid string `gorm:"type:varchar(36);not null;default:'';comment:企业目录UUID,空串表示该企业下任意目录"`
	EnterpriseCustomerName        string `gorm:"type:varchar(255);not null;comment:企业客户名称"`
	Ctime                         int64
	Utime                         int64
}

type Offer struct {
	Id                    int64  `gorm:"primaryKey;autoIncrement;comment:优惠自增ID"`
	Name                  string `gorm:"type:varchar(255);not null;comment:优惠名称"`
	PartnerId             int64  `gorm:"not null;index:idx_partner_id;comment:合作方ID"`
	ConditionId           int64  `gorm:"not null;index:idx_condition_id;comment:条件ID"`
	OfferType             string `gorm:"type:varchar(32);not null;comment:优惠类型 Site/Voucher"`
	MaxGlobalApplications int64  `gorm:"not null;default:0;comment:全局最多使用次数,0表示没有设置"`
	Ctime                 int64
	Utime                 int64
}

type Voucher struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:兑换码自增ID"`
	Code      string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_code;comment:兑换码"`
	Name      string `gorm:"type:varchar(255);not null;comment:兑换码名称"`
	Usage     string `gorm:"type:varchar(64);not null;comment:使用策略 Single use/Multi-use/Once per customer/Multi-use-per-Customer"`
	NumOrders int64  `gorm:"not null;default:0;comment:已经核销的订单数"`
	Version   int64  `gorm:"not null;default:0;comment:版本号"`
	Ctime     int64
	Utime     int64
}

// VoucherOffer 兑换码与优惠的关联
type VoucherOffer struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	VoucherId int64 `gorm:"not null;uniqueIndex:uniq_voucher_offer;comment:兑换码ID"`
	OfferId   int64 `gorm:"not null;uniqueIndex:uniq_voucher_offer;index:idx_offer_id;comment:优惠ID"`
	Ctime     int64
}

type OfferAssignment struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:分配记录自增ID"`
	OfferId   int64  `gorm:"not null;index:idx_offer_code_email;comment:优惠ID"`
	Code      string `gorm:"type:varchar(128);not null;index:idx_offer_code_email;index:idx_code;comment:兑换码"`
	UserEmail string `gorm:"type:varchar(255);not null;index:idx_offer_code_email;comment:被分配的邮箱"`
	Status    string `gorm:"type:varchar(32);not null;comment:状态 EMAIL_PENDING/REDEEMED/REVOKED"`
	Ctime     int64
	Utime     int64
}

// RedemptionLog 核销流水，(Code, OrderSn) 唯一保证同一个订单不会重复核销
type RedemptionLog struct {
	Id         int64                     `gorm:"primaryKey;autoIncrement;comment:核销流水自增ID"`
	VoucherId  int64                     `gorm:"not null;comment:兑换码ID"`
	Code       string                    `gorm:"type:varchar(128);not null;uniqueIndex:uniq_code_order_sn;comment:兑换码"`
	OrderSn    string                    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_code_order_sn;comment:订单序列号"`
	OfferId    int64                     `gorm:"not null;comment:优惠ID"`
	Uid        int64                     `gorm:"not null;index:idx_uid;comment:用户ID"`
	UserEmail  string                    `gorm:"type:varchar(255);not null;comment:用户邮箱"`
	NumOrders  int64                     `gorm:"not null;comment:核销后兑换码的订单数"`
	CourseRuns sqlx.JsonColumn[[]string] `gorm:"type:varchar(1024);comment:购物车中的课程 run ID,JSON格式"`
	Ctime      int64
	Utime      int64
}
