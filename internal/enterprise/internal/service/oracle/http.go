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

package oracle

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/enterprise/oracle"

type learnerResponse struct {
	Count   int `json:"count"`
	Results []struct {
		EnterpriseCustomer struct {
			UUID   string `json:"uuid"`
			Name   string `json:"name"`
			Active bool   `json:"active"`
		} `json:"enterprise_customer"`
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	} `json:"results"`
}

type containsResponse struct {
	ContainsContentItems bool `json:"contains_content_items"`
}

// HTTPClient 调用企业服务的 REST 接口
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
	tracer  trace.Tracer
	logger  *elog.Component
}

func NewHTTPClient(cfg Config) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: cfg.Timeout},
		tracer:  otel.GetTracerProvider().Tracer(instrumentationName),
		logger:  elog.DefaultLogger,
	}
}

func (c *HTTPClient) EnterpriseLearner(ctx context.Context, site domain.Site, user domain.User) (domain.Membership, error) {
	ctx, span := c.tracer.Start(ctx, "enterprise.learner", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("site", site.Domain), attribute.Int64("uid", user.ID))

	var res learnerResponse
	req := httpx.NewRequest(ctx, http.MethodGet, c.baseURL+"/enterprise-learner/").
		Client(c.client).
		AddParam("username", user.Username)
	err := c.do(req, "enterprise-learner", &res)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Membership{}, err
	}
	if res.Count == 0 || len(res.Results) == 0 {
		return domain.Membership{}, fmt.Errorf("%w: username=%s", ErrLearnerNotFound, user.Username)
	}
	r := res.Results[0]
	return domain.Membership{
		Username: r.User.Username,
		EnterpriseCustomer: domain.EnterpriseCustomer{
			UUID:   r.EnterpriseCustomer.UUID,
			Name:   r.EnterpriseCustomer.Name,
			Active: r.EnterpriseCustomer.Active,
		},
	}, nil
}

func (c *HTTPClient) CatalogContainsCourseRuns(ctx context.Context, site domain.Site,
	customerUUID, catalogUUID string, courseRunIDs []string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "enterprise.contains_content_items", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("site", site.Domain),
		attribute.String("customer", customerUUID),
		attribute.String("catalog", catalogUUID),
		attribute.StringSlice("course_run_ids", courseRunIDs),
	)

	endpoint := fmt.Sprintf("%s/enterprise-customer/%s/contains_content_items/", c.baseURL, url.PathEscape(customerUUID))
	if catalogUUID != "" {
		endpoint = fmt.Sprintf("%s/enterprise_catalogs/%s/contains_content_items/", c.baseURL, url.PathEscape(catalogUUID))
	}
	req := httpx.NewRequest(ctx, http.MethodGet, endpoint).Client(c.client)
	for _, id := range courseRunIDs {
		req = req.AddParam("course_run_ids", id)
	}
	var res containsResponse
	if err := c.do(req, "contains_content_items", &res); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}
	return res.ContainsContentItems, nil
}

func (c *HTTPClient) do(req *httpx.Request, resource string, val any) error {
	if c.token != "" {
		req = req.AddHeader("Authorization", "JWT "+c.token)
	}
	start := time.Now()
	resp := req.Do()
	if resp.Response != nil {
		defer resp.Body.Close()
	}
	status := "error"
	defer func() {
		requestDuration.WithLabelValues(resource, status).Observe(time.Since(start).Seconds())
	}()
	if resp.Response != nil && resp.StatusCode != http.StatusOK {
		status = strconv.Itoa(resp.StatusCode)
		return fmt.Errorf("%w: resource=%s status=%d", ErrUnexpectedStatus, resource, resp.StatusCode)
	}
	if err := resp.JSONScan(val); err != nil {
		return fmt.Errorf("请求企业接口 %s 失败: %w", resource, err)
	}
	status = strconv.Itoa(resp.StatusCode)
	return nil
}
