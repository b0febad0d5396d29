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

package event

import (
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/shopspring/decimal"
)

const (
	OrderPlacedEventName = "enterprise_order_placed_events"
	RedemptionEventName  = "enterprise_redemption_events"
)

// OrderPlacedEvent 订单已经下单，需要核销购物车中的兑换码
type OrderPlacedEvent struct {
	OrderSN      string            `json:"orderSN"`
	BasketID     int64             `json:"basketID"`
	Site         Site              `json:"site"`
	Owner        Owner             `json:"owner"`
	Lines        []Line            `json:"lines"`
	VoucherCodes []string          `json:"voucherCodes"`
	Attributes   map[string]string `json:"attributes"`
}

type Site struct {
	ID        int64  `json:"id"`
	Domain    string `json:"domain"`
	PartnerID int64  `json:"partnerID"`
}

type Owner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Line struct {
	ProductID       int64  `json:"productID"`
	Title           string `json:"title"`
	CourseKey       string `json:"courseKey"`
	CertificateType string `json:"certificateType"`
	Quantity        int64  `json:"quantity"`
	// UnitPrice 十进制字符串，例如 "100.00"
	UnitPrice string `json:"unitPrice"`
}

// Basket 还原下单时的购物车，兑换码只带上 code
func (e OrderPlacedEvent) Basket() (domain.Basket, error) {
	lines := make([]domain.Line, 0, len(e.Lines))
	for _, l := range e.Lines {
		price, err := decimal.NewFromString(l.UnitPrice)
		if err != nil {
			return domain.Basket{}, err
		}
		lines = append(lines, domain.Line{
			Product: domain.Product{
				ID:    l.ProductID,
				Title: l.Title,
				Attrs: domain.ProductAttrs{
					CourseKey:       l.CourseKey,
					CertificateType: l.CertificateType,
				},
			},
			Quantity:  l.Quantity,
			UnitPrice: price,
		})
	}
	var owner *domain.User
	if e.Owner.ID != 0 {
		owner = &domain.User{ID: e.Owner.ID, Username: e.Owner.Username, Email: e.Owner.Email}
	}
	return domain.Basket{
		ID:    e.BasketID,
		Site:  domain.Site{ID: e.Site.ID, Domain: e.Site.Domain, PartnerID: e.Site.PartnerID},
		Owner: owner,
		Lines: lines,
		Vouchers: slice.Map(e.VoucherCodes, func(idx int, src string) domain.Voucher {
			return domain.Voucher{Code: src}
		}),
		Attributes: e.Attributes,
	}, nil
}

// RedemptionEvent 兑换码核销成功
type RedemptionEvent struct {
	Key       string `json:"key"`
	OrderSN   string `json:"orderSN"`
	Code      string `json:"code"`
	OfferID   int64  `json:"offerID"`
	Uid       int64  `json:"uid"`
	UserEmail string `json:"userEmail"`
	NumOrders int64  `json:"numOrders"`
	Ctime     int64  `json:"ctime"`
}
