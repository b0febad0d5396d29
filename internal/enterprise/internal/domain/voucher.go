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

import "strings"

// UsagePolicy 兑换码的使用策略
type UsagePolicy string

const (
	UsageSingleUse           UsagePolicy = "Single use"
	UsageMultiUse            UsagePolicy = "Multi-use"
	UsageOncePerCustomer     UsagePolicy = "Once per customer"
	UsageMultiUsePerCustomer UsagePolicy = "Multi-use-per-Customer"
)

// DefaultMaxUses 没有设置全局上限的多次使用兑换码，按照这个值计算容量
const DefaultMaxUses int64 = 10000

func (u UsagePolicy) Valid() bool {
	switch u {
	case UsageSingleUse, UsageMultiUse, UsageOncePerCustomer, UsageMultiUsePerCustomer:
		return true
	default:
		return false
	}
}

func (u UsagePolicy) String() string {
	return string(u)
}

type Voucher struct {
	ID        int64
	Code      string
	Name      string
	Usage     UsagePolicy
	NumOrders int64
	OfferIDs  []int64
	Version   int64
	Ctime     int64
	Utime     int64
}

type AssignmentStatus string

const (
	AssignmentStatusPending  AssignmentStatus = "EMAIL_PENDING"
	AssignmentStatusRedeemed AssignmentStatus = "REDEEMED"
	AssignmentStatusRevoked  AssignmentStatus = "REVOKED"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

// Assignment 兑换码分配记录，(OfferID, Code, UserEmail) 唯一确定一次预留
type Assignment struct {
	ID        int64
	OfferID   int64
	Code      string
	UserEmail string
	Status    AssignmentStatus
	Ctime     int64
	Utime     int64
}

func (a Assignment) Pending() bool {
	return a.Status == AssignmentStatusPending
}

func (a Assignment) BelongsTo(offerID int64, code, email string) bool {
	return a.OfferID == offerID && a.Code == code && strings.EqualFold(a.UserEmail, email)
}

// Redemption 一次成功的核销
type Redemption struct {
	ID           int64
	OrderSN      string
	VoucherID    int64
	Code         string
	OfferID      int64
	UserID       int64
	UserEmail    string
	NumOrders    int64
	CourseRunIDs []string
	Ctime        int64
}

// Coupon 一批兑换码，以及它们挂载的企业优惠
type Coupon struct {
	Name                  string
	PartnerID             int64
	OfferType             OfferType
	Usage                 UsagePolicy
	MaxGlobalApplications int64
	Quantity              int
	Condition             Condition
	Offers                []Offer
	Vouchers              []Voucher
}
