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
	"time"

	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
)

//go:generate mockgen -source=./oracle.go -package=oraclemocks -destination=./mocks/oracle.mock.go Client

var (
	// ErrLearnerNotFound 用户没有关联任何企业客户
	ErrLearnerNotFound  = errors.New("企业学员不存在")
	ErrUnexpectedStatus = errors.New("企业接口返回了非预期的状态码")
)

// Client 企业目录成员关系查询，所有调用都可能因为网络失败返回 error
type Client interface {
	EnterpriseLearner(ctx context.Context, site domain.Site, user domain.User) (domain.Membership, error)
	// CatalogContainsCourseRuns catalogUUID 为空时在企业客户的所有目录中查找
	CatalogContainsCourseRuns(ctx context.Context, site domain.Site, customerUUID, catalogUUID string, courseRunIDs []string) (bool, error)
}

type Config struct {
	BaseURL  string        `yaml:"baseURL"`
	Token    string        `yaml:"token"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}
