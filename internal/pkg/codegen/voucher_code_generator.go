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

package codegen

import (
	"fmt"
	"strings"

	"github.com/lithammer/shortuuid/v4"
)

const (
	// Alphabet 去掉了容易混淆的 I O 0 1
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// CodeLength 兑换码长度
	CodeLength = 16
)

// ShortUUIDGenerateFunc 定义生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func(alphabet string) string

// Generator 兑换码生成器
type Generator struct {
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{shortUUIDGenFunc: uuidGen}
}

// NewGenerator 创建一个Generator实例
func NewGenerator() *Generator {
	return NewGeneratorWith(shortuuid.NewWithAlphabet)
}

// Generate 生成 16 位大写兑换码
func (g *Generator) Generate() (string, error) {
	code := strings.ToUpper(g.shortUUIDGenFunc(Alphabet))
	if len(code) < CodeLength {
		return "", fmt.Errorf("兑换码长度不足: %d", len(code))
	}
	return code[:CodeLength], nil
}

// GenerateN 生成 n 个互不相同的兑换码
func (g *Generator) GenerateN(n int) ([]string, error) {
	seen := make(map[string]struct{}, n)
	res := make([]string, 0, n)
	for len(res) < n {
		code, err := g.Generate()
		if err != nil {
			return nil, err
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		res = append(res, code)
	}
	return res, nil
}
