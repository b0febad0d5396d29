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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCodeLedger_Ceiling(t *testing.T) {
	testCases := []struct {
		name     string
		usage    UsagePolicy
		maxApply int64
		want     int64
	}{
		{
			name:     "单次使用忽略全局上限",
			usage:    UsageSingleUse,
			maxApply: 5,
			want:     1,
		},
		{
			name:  "每人多次未设置上限",
			usage: UsageMultiUsePerCustomer,
			want:  1,
		},
		{
			name:     "每人多次设置上限",
			usage:    UsageMultiUsePerCustomer,
			maxApply: 3,
			want:     3,
		},
		{
			name:  "多次使用未设置上限",
			usage: UsageMultiUse,
			want:  DefaultMaxUses,
		},
		{
			name:     "每人一次设置上限",
			usage:    UsageOncePerCustomer,
			maxApply: 2,
			want:     2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := CodeLedger{
				Voucher: Voucher{Code: "ABC", Usage: tc.usage},
				Offer:   Offer{ID: 1, MaxGlobalApplications: tc.maxApply},
			}
			assert.Equal(t, tc.want, l.Ceiling())
		})
	}
}

func TestCodeLedger_Slots(t *testing.T) {
	l := CodeLedger{
		Voucher: Voucher{Code: "ABC", Usage: UsageMultiUse, NumOrders: 1},
		Offer:   Offer{ID: 1, MaxGlobalApplications: 5},
		Assignments: []Assignment{
			{OfferID: 1, Code: "ABC", UserEmail: "a@example.com", Status: AssignmentStatusPending},
			{OfferID: 1, Code: "ABC", UserEmail: "A@Example.com", Status: AssignmentStatusPending},
			{OfferID: 1, Code: "ABC", UserEmail: "b@example.com", Status: AssignmentStatusRevoked},
			{OfferID: 1, Code: "ABC", UserEmail: "c@example.com", Status: AssignmentStatusRedeemed},
			// 其它优惠上的预留不占用容量
			{OfferID: 2, Code: "ABC", UserEmail: "d@example.com", Status: AssignmentStatusPending},
		},
		Redemptions: []Redemption{
			{Code: "ABC", UserEmail: "c@example.com"},
		},
	}
	assert.Equal(t, int64(2), l.PendingCount())
	assert.Equal(t, int64(2), l.PendingOf(1, "a@EXAMPLE.com"))
	assert.Equal(t, int64(0), l.PendingOf(1, "b@example.com"))
	assert.Equal(t, int64(1), l.RedeemedBy("C@example.com"))
	assert.Equal(t, int64(2), l.FreeSlots())
	assert.False(t, l.Exhausted())
	assert.False(t, l.Pristine())

	l.Voucher.NumOrders = 5
	assert.Equal(t, int64(0), l.FreeSlots())
	assert.True(t, l.Exhausted())

	assert.True(t, CodeLedger{Voucher: Voucher{Code: "XYZ"}}.Pristine())
}

func TestCodeLedger_RedeemedBy(t *testing.T) {
	// 没有分配记录的核销只出现在流水里
	l := CodeLedger{
		Voucher: Voucher{Code: "ABC", Usage: UsageMultiUsePerCustomer},
		Redemptions: []Redemption{
			{Code: "ABC", UserEmail: "a@example.com"},
			{Code: "ABC", UserEmail: "a@example.com"},
			{Code: "ABC", UserEmail: "b@example.com"},
		},
	}
	assert.Equal(t, int64(2), l.RedeemedBy("a@example.com"))
	assert.Equal(t, int64(0), l.RedeemedBy("z@example.com"))
}

func TestDecision_CapacityExhausted(t *testing.T) {
	assert.True(t, Rejected(ReasonCodeExhausted).CapacityExhausted())
	assert.True(t, Rejected(ReasonNoFreeSlot).CapacityExhausted())
	assert.True(t, Rejected(ReasonCustomerLimitReached).CapacityExhausted())
	assert.False(t, Rejected(ReasonNotInCatalog).CapacityExhausted())
	assert.False(t, Satisfied(ReasonFreeSlot).CapacityExhausted())
}

func TestBasket(t *testing.T) {
	b := Basket{
		Lines: []Line{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
			{Quantity: 1, UnitPrice: decimal.Zero},
		},
	}
	assert.True(t, b.Total().Equal(decimal.RequireFromString("21")))
	assert.True(t, b.Anonymous())
	assert.False(t, b.IsEmpty())
	_, ok := b.Voucher()
	assert.False(t, ok)

	c := Condition{EnterpriseCustomerName: "Acme"}
	assert.Equal(t, "Basket contains a seat from Acme's catalog", c.Name())
}
