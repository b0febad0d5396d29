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

package database

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/ecommerce/internal/pkg/database"
	spanKey             = "tracing:span"
)

var _ gorm.Plugin = &GormTracingPlugin{}

// GormTracingPlugin 给每一条 SQL 创建一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type callbackRegister interface {
	Register(name string, fn func(*gorm.DB)) error
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	callbacks := []struct {
		op     string
		before callbackRegister
		after  callbackRegister
	}{
		{op: "SELECT", before: cb.Query().Before("gorm:query"), after: cb.Query().After("gorm:query")},
		{op: "INSERT", before: cb.Create().Before("gorm:create"), after: cb.Create().After("gorm:create")},
		{op: "UPDATE", before: cb.Update().Before("gorm:update"), after: cb.Update().After("gorm:update")},
		{op: "DELETE", before: cb.Delete().Before("gorm:delete"), after: cb.Delete().After("gorm:delete")},
		{op: "ROW", before: cb.Row().Before("gorm:row"), after: cb.Row().After("gorm:row")},
		{op: "RAW", before: cb.Raw().Before("gorm:raw"), after: cb.Raw().After("gorm:raw")},
	}
	for _, c := range callbacks {
		if err := c.before.Register("tracing:before_"+c.op, p.before(c.op)); err != nil {
			return fmt.Errorf("注册 %s 追踪回调失败: %w", c.op, err)
		}
		if err := c.after.Register("tracing:after_"+c.op, p.after(c.op)); err != nil {
			return fmt.Errorf("注册 %s 追踪回调失败: %w", c.op, err)
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			return
		}
		spanName := "SQL " + op
		if db.Statement.Table != "" {
			spanName = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		span.SetAttributes(attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
			attribute.String("db.table", db.Statement.Table),
			attribute.String("db.statement", db.Statement.SQL.String()),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		// 查询不到数据不算错误
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
