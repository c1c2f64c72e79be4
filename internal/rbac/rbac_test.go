package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnforcer_Allow(t *testing.T) {
	e, err := NewEnforcer()
	assert.NoError(t, err)

	tests := []struct {
		name             string
		role             string
		resource, action string
		want             bool
	}{
		{"employee boleh clock-in", RoleEmployee, "attendance", "create", true},
		{"employee boleh lihat jadwal", RoleEmployee, "schedule", "read", true},
		{"employee tidak boleh ubah jadwal", RoleEmployee, "schedule", "write", false},
		{"employee tidak boleh lihat semua absensi", RoleEmployee, "attendance", "read_all", false},
		{"employee tidak boleh approve cuti", RoleEmployee, "leave", "approve", false},
		{"admin mewarisi hak employee", RoleAdmin, "attendance", "create", true},
		{"admin boleh koreksi absensi", RoleAdmin, "attendance", "correct", true},
		{"admin boleh kelola karyawan", RoleAdmin, "employee", "delete", true},
		{"role tidak dikenal ditolak", "GUEST", "attendance", "create", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Allow(tt.role, tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
