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

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
)

//go:generate mockgen -source=./types.go -package=cachemocks -destination=./mocks/oracle.mock.go OracleCache

// OracleCache 企业接口响应的短期缓存，key 由站点、资源和参数组成
type OracleCache interface {
	GetLearner(ctx context.Context, site domain.Site, username string) (LearnerEntry, error)
	SetLearner(ctx context.Context, site domain.Site, username string, entry LearnerEntry) error
	GetContains(ctx context.Context, site domain.Site, q ContainsQuery) (bool, error)
	SetContains(ctx context.Context, site domain.Site, q ContainsQuery, contains bool) error
}

// LearnerEntry Found 为 false 表示企业接口明确返回了不存在
type LearnerEntry struct {
	Found      bool
	Membership domain.Membership
}

type ContainsQuery struct {
	CustomerUUID string
	CatalogUUID  string
	CourseRunIDs []string
}
