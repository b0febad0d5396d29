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

package web

// CheckVoucherReq 站点由请求的 Host 决定
type CheckVoucherReq struct {
	Code       string            `json:"code"`
	Lines      []Line            `json:"lines"`
	Catalog    string            `json:"catalog,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type Line struct {
	ProductID       int64  `json:"productID"`
	Title           string `json:"title"`
	CourseKey       string `json:"courseKey"`
	CertificateType string `json:"certificateType"`
	Quantity        int64  `json:"quantity"`
	UnitPrice       string `json:"unitPrice"`
}

type CheckVoucherResp struct {
	Satisfied bool   `json:"satisfied"`
	Reason    string `json:"reason"`
}

type CreateCouponReq struct {
	Name                          string `json:"name"`
	PartnerID                     int64  `json:"partnerID"`
	OfferType                     string `json:"offerType"`
	Usage                         string `json:"usage"`
	Quantity                      int    `json:"quantity"`
	MaxGlobalApplications         int64  `json:"maxGlobalApplications"`
	EnterpriseCustomerUUID        string `json:"enterpriseCustomerUUID"`
	EnterpriseCustomerName        string `json:"enterpriseCustomerName"`
	EnterpriseCustomerCatalogUUID string `json:"enterpriseCustomerCatalogUUID"`
}

type CreateCouponResp struct {
	OfferIDs []int64  `json:"offerIDs"`
	Codes    []string `json:"codes"`
}

type AssignCodesReq struct {
	Codes  []string `json:"codes"`
	Emails []string `json:"emails"`
}

type RevokeAssignmentReq struct {
	OfferID int64  `json:"offerID"`
	Code    string `json:"code"`
	Email   string `json:"email"`
}

type ListAssignmentsReq struct {
	OfferID int64 `json:"offerID"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
}

type Assignment struct {
	ID        int64  `json:"id"`
	OfferID   int64  `json:"offerID"`
	Code      string `json:"code"`
	UserEmail string `json:"userEmail"`
	Status    string `json:"status"`
	Utime     int64  `json:"utime"`
}

type AssignmentList struct {
	Total       int64        `json:"total"`
	Assignments []Assignment `json:"assignments"`
}
