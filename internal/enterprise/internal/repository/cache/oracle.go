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

package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/pkg/errors"
)

var (
	ErrCacheMiss = errors.New("缓存未命中")
)

type OracleECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewOracleECache(ec ecache.Cache, expiration time.Duration) OracleCache {
	return &OracleECache{
		ec: &ecache.NamespaceCache{
			Namespace: "enterprise:oracle:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (o *OracleECache) GetLearner(ctx context.Context, site domain.Site, username string) (LearnerEntry, error) {
	var entry LearnerEntry
	err := o.get(ctx, o.key(site, "enterprise-learner", username), &entry)
	return entry, err
}

func (o *OracleECache) SetLearner(ctx context.Context, site domain.Site, username string, entry LearnerEntry) error {
	return o.set(ctx, o.key(site, "enterprise-learner", username), entry)
}

func (o *OracleECache) GetContains(ctx context.Context, site domain.Site, q ContainsQuery) (bool, error) {
	var contains bool
	err := o.get(ctx, o.containsKey(site, q), &contains)
	return contains, err
}

func (o *OracleECache) SetContains(ctx context.Context, site domain.Site, q ContainsQuery, contains bool) error {
	return o.set(ctx, o.containsKey(site, q), contains)
}

func (o *OracleECache) get(ctx context.Context, key string, val any) error {
	res := o.ec.Get(ctx, key)
	if res.KeyNotFound() {
		return ErrCacheMiss
	}
	if res.Err != nil {
		return errors.Wrap(res.Err, "查询缓存出错")
	}
	str, err := res.AsString()
	if err != nil {
		return errors.Wrap(err, "缓存值类型错误")
	}
	return errors.Wrap(json.Unmarshal([]byte(str), val), "反序列化缓存值失败")
}

func (o *OracleECache) set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "序列化缓存值失败")
	}
	return o.ec.Set(ctx, key, string(data), o.expiration)
}

func (o *OracleECache) containsKey(site domain.Site, q ContainsQuery) string {
	runs := slices.Clone(q.CourseRunIDs)
	slices.Sort(runs)
	return o.key(site, "contains-content-items", q.CustomerUUID, q.CatalogUUID, strings.Join(runs, ","))
}

// 注意 Namespace 设置
func (o *OracleECache) key(site domain.Site, resource string, args ...string) string {
	sum := md5.Sum([]byte(strings.Join(args, "|")))
	return fmt.Sprintf("site:%s:%s:%s", site.Domain, resource, hex.EncodeToString(sum[:]))
}
