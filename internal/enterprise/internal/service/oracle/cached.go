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
	"errors"
	"fmt"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

// CachedClient 缓存成功的响应，失败的调用不会被缓存
type CachedClient struct {
	client Client
	cache  cache.OracleCache
	logger *elog.Component
}

func NewCachedClient(client Client, c cache.OracleCache) *CachedClient {
	return &CachedClient{
		client: client,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (c *CachedClient) EnterpriseLearner(ctx context.Context, site domain.Site, user domain.User) (domain.Membership, error) {
	entry, err := c.cache.GetLearner(ctx, site, user.Username)
	if err == nil {
		cacheRequests.WithLabelValues("enterprise-learner", "hit").Inc()
		if !entry.Found {
			return domain.Membership{}, fmt.Errorf("%w: username=%s", ErrLearnerNotFound, user.Username)
		}
		return entry.Membership, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn("查询企业学员缓存失败", elog.FieldErr(err), elog.String("site", site.Domain))
	}
	cacheRequests.WithLabelValues("enterprise-learner", "miss").Inc()

	m, err := c.client.EnterpriseLearner(ctx, site, user)
	switch {
	case err == nil:
		entry = cache.LearnerEntry{Found: true, Membership: m}
	case errors.Is(err, ErrLearnerNotFound):
		entry = cache.LearnerEntry{Found: false}
	default:
		return domain.Membership{}, err
	}
	if err1 := c.cache.SetLearner(ctx, site, user.Username, entry); err1 != nil {
		c.logger.Warn("回写企业学员缓存失败", elog.FieldErr(err1), elog.String("site", site.Domain))
	}
	return m, err
}

func (c *CachedClient) CatalogContainsCourseRuns(ctx context.Context, site domain.Site,
	customerUUID, catalogUUID string, courseRunIDs []string) (bool, error) {
	q := cache.ContainsQuery{
		CustomerUUID: customerUUID,
		CatalogUUID:  catalogUUID,
		CourseRunIDs: courseRunIDs,
	}
	contains, err := c.cache.GetContains(ctx, site, q)
	if err == nil {
		cacheRequests.WithLabelValues("contains_content_items", "hit").Inc()
		return contains, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn("查询企业目录缓存失败", elog.FieldErr(err), elog.String("site", site.Domain))
	}
	cacheRequests.WithLabelValues("contains_content_items", "miss").Inc()

	contains, err = c.client.CatalogContainsCourseRuns(ctx, site, customerUUID, catalogUUID, courseRunIDs)
	if err != nil {
		return false, err
	}
	if err = c.cache.SetContains(ctx, site, q, contains); err != nil {
		c.logger.Warn("回写企业目录缓存失败", elog.FieldErr(err), elog.String("site", site.Domain))
	}
	return contains, nil
}
