package main

import (
	"crypto/sha256"
	"crypto/subtle"
	"maps"
	"strings"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// 每次决策都返回的静态上下文
var staticContext = map[string]any{
	"exampleKey": "exampleValue",
}

// Authorizer 比较 Authorization 头与配置的 API Key
type Authorizer struct {
	enabled  bool
	expected [sha256.Size]byte
}

// NewAuthorizer 用 API Key 构造授权器，空 Key 拒绝所有请求
func NewAuthorizer(secret string) *Authorizer {
	a := &Authorizer{}
	if len(secret) > 0 {
		a.enabled = true
		a.expected = sha256.Sum256([]byte(bearerPrefix + secret))
	}
	return a
}

// Authorize 从请求头中取出 Authorization 并做判断
func (a *Authorizer) Authorize(headers map[string]string) Decision {
	value, ok := lookupHeader(headers, authorizationHeader)
	if !ok {
		return newDecision(false)
	}
	return a.AuthorizeHeader(value)
}

// AuthorizeHeader 判断单个 Authorization 头的值
// 比较定长摘要，长度不同时也不会提前返回
func (a *Authorizer) AuthorizeHeader(value string) Decision {
	if !a.enabled || len(value) == 0 {
		return newDecision(false)
	}
	got := sha256.Sum256([]byte(value))
	return newDecision(subtle.ConstantTimeCompare(got[:], a.expected[:]) == 1)
}

func newDecision(authorized bool) Decision {
	return Decision{
		IsAuthorized: authorized,
		Context:      maps.Clone(staticContext),
	}
}

// HTTP API 会把头名转成小写，REST API 保留原样
func lookupHeader(headers map[string]string, name string) (string, bool) {
	if v, ok := headers[strings.ToLower(name)]; ok {
		return v, true
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
