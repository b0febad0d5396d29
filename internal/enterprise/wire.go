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

//go:build wireinject

package enterprise

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/event/consumer"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/event/producer"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository/cache"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/condition"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/service/oracle"
	"github.com/ecodeclub/ecommerce/internal/enterprise/internal/web"
	"github.com/ecodeclub/ecommerce/internal/pkg/codegen"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lithammer/shortuuid/v4"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, switches Switches, cfg OracleConfig, sites Sites) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewEnterpriseRepository,
		newOracleClient,
		condition.NewUsageRules,
		newConditionRegistry,
		service.NewService,
		newCodeGenerator,
		service.NewAdminService,
		eventKeyGenerator,
		producer.NewRedemptionEventProducer,
		service.NewRedemptionService,
		web.NewHandler,
		web.NewAdminHandler,
		newOrderEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.EnterpriseDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMEnterpriseDAO(db)
}

func newOracleClient(ec ecache.Cache, cfg OracleConfig) oracle.Client {
	return oracle.NewCachedClient(oracle.NewHTTPClient(cfg), cache.NewOracleECache(ec, cfg.CacheTTL))
}

func newConditionRegistry(switches domain.Switches, client oracle.Client,
	repo repository.EnterpriseRepository, rules *condition.UsageRules) *condition.Registry {
	base := condition.NewEnterpriseCustomerCondition(switches, client)
	r := condition.NewRegistry()
	r.Register(domain.ConditionTypeEnterpriseCustomer, base)
	r.Register(domain.ConditionTypeAssignableEnterpriseCustomer,
		condition.NewAssignableEnterpriseCustomerCondition(base, repo, rules))
	return r
}

func newCodeGenerator() service.CodeGenerator {
	return codegen.NewGenerator()
}

func eventKeyGenerator() func() string {
	return shortuuid.New
}

func newOrderEventConsumer(svc service.RedemptionService, q mq.MQ) (*consumer.OrderEventConsumer, error) {
	res, err := consumer.NewOrderEventConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}
