package vendas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	role, err := ParseRole("seller")
	require.NoError(t, err)
	require.Equal(t, RoleSeller, role)

	role, err = ParseRole("supervisor")
	require.NoError(t, err)
	require.Equal(t, RoleSupervisor, role)

	_, err = ParseRole("admin")
	require.Error(t, err)
	_, err = ParseRole("")
	require.Error(t, err)
}

func TestPermissionsFor(t *testing.T) {
	t.Parallel()

	sale := &Sale{User: Agent{Name: "Carlos Lima", EmployeeID: "E100"}}

	cases := []struct {
		name    string
		session Session
		want    Permissions
	}{
		{
			name:    "owner seller",
			session: Session{EmployeeID: "E100", Role: RoleSeller},
			want:    Permissions{CanEdit: true, CanDelete: true, CanSaveObservation: true},
		},
		{
			name:    "non-owner seller",
			session: Session{EmployeeID: "E999", Role: RoleSeller},
			want:    Permissions{CanEdit: false, CanDelete: false, CanSaveObservation: true},
		},
		{
			name:    "owner supervisor",
			session: Session{EmployeeID: "E100", Role: RoleSupervisor},
			want:    Permissions{CanEdit: true, CanDelete: true, CanSaveObservation: false},
		},
		{
			name:    "non-owner supervisor",
			session: Session{EmployeeID: "E999", Role: RoleSupervisor},
			want:    Permissions{CanEdit: false, CanDelete: false, CanSaveObservation: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PermissionsFor(tc.session, sale))
		})
	}
}
