// Package rbac membungkus casbin untuk otorisasi berbasis role.
// Model dan policy bersifat statis: satu kantor, dua role.
package rbac

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && keyMatch(r.act, p.act)
`

// policies: [role, resource, action]. ADMIN mewarisi seluruh hak
// EMPLOYEE lewat grouping, plus akses administratif.
var policies = [][]string{
	{RoleEmployee, "attendance", "create"},
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "schedule", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "tracking", "ping"},
	{RoleEmployee, "performance", "read"},
	{RoleEmployee, "auth", "read"},

	{RoleAdmin, "attendance", "read_all"},
	{RoleAdmin, "attendance", "correct"},
	{RoleAdmin, "schedule", "read_all"},
	{RoleAdmin, "schedule", "write"},
	{RoleAdmin, "employee", "*"},
	{RoleAdmin, "leave", "read_all"},
	{RoleAdmin, "leave", "approve"},
	{RoleAdmin, "tracking", "read_all"},
	{RoleAdmin, "performance", "read_all"},
	{RoleAdmin, "activity", "read_all"},
}

//go:generate mockgen -source=rbac.go -destination=mock/rbac_mock.go -package=mock
type Enforcer interface {
	Allow(role, resource, action string) (bool, error)
}

type enforcer struct {
	e  *casbin.Enforcer
	mu sync.RWMutex
}

func NewEnforcer() (Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("build rbac model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("build rbac enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("add rbac policy %v: %w", p, err)
		}
	}
	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleEmployee); err != nil {
		return nil, fmt.Errorf("add rbac grouping: %w", err)
	}

	return &enforcer{e: e}, nil
}

func (s *enforcer) Allow(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.e.Enforce(role, resource, action)
}
