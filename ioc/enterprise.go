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

package ioc

import (
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ecommerce/internal/enterprise"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitEnterpriseModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) *enterprise.Module {
	type SiteConfig struct {
		ID        int64  `yaml:"id"`
		Domain    string `yaml:"domain"`
		PartnerID int64  `yaml:"partnerID"`
	}
	type Config struct {
		EnterpriseOffers           bool                    `yaml:"enterpriseOffers"`
		EnterpriseOffersForCoupons bool                    `yaml:"enterpriseOffersForCoupons"`
		Oracle                     enterprise.OracleConfig `yaml:"oracle"`
		Sites                      []SiteConfig            `yaml:"sites"`
	}
	var cfg Config
	err := econf.UnmarshalKey("enterprise", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Oracle.Timeout <= 0 {
		cfg.Oracle.Timeout = 3 * time.Second
	}
	if cfg.Oracle.CacheTTL <= 0 {
		cfg.Oracle.CacheTTL = 10 * time.Minute
	}
	m, err := enterprise.InitModule(db, ec, q, enterprise.Switches{
		EnterpriseOffers:           cfg.EnterpriseOffers,
		EnterpriseOffersForCoupons: cfg.EnterpriseOffersForCoupons,
	}, cfg.Oracle, slice.Map(cfg.Sites, func(idx int, src SiteConfig) enterprise.Site {
		return enterprise.Site{
			ID:        src.ID,
			Domain:    src.Domain,
			PartnerID: src.PartnerID,
		}
	}))
	if err != nil {
		panic(err)
	}
	return m
}

func InitEnterpriseHandler(m *enterprise.Module) *enterprise.Handler {
	return m.Hdl
}

func InitEnterpriseAdminHandler(m *enterprise.Module) *enterprise.AdminHandler {
	return m.AdminHdl
}
