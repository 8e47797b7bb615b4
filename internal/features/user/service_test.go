package user

import (
	"context"
	"testing"

	"go-clinic/internal/access"
	"go-clinic/internal/apperr"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users   map[string]*User
	patches map[string]bson.M
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   map[string]*User{},
		patches: map[string]bson.M{},
	}
}

func (f *fakeUserRepo) add(u User) string {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	id := u.ID.Hex()
	f.users[id] = &u
	return id
}

func (f *fakeUserRepo) Create(ctx context.Context, user *User) error {
	f.users[user.ID.Hex()] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]User, error) {
	out := []User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, patch bson.M) error {
	u, ok := f.users[id]
	if !ok {
		return apperr.ErrNotFound
	}
	f.patches[id] = patch
	if role, ok := patch["role"].(string); ok {
		u.Role = role
	}
	if perms, ok := patch["permissions"].([]access.Permission); ok {
		u.Permissions = perms
	}
	if disabled, ok := patch["disabled"].(bool); ok {
		u.Disabled = disabled
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Email:    " Ana@Clinica.com ",
		Nome:     "Ana",
		Password: "segredo123",
		Role:     "Recepcionista",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@clinica.com", u.Email)
	assert.Equal(t, "recepcionista", u.Role)

	table, _ := access.LookupRole("recepcionista")
	assert.Equal(t, table.Permissions, u.Permissions)

	// Hash verifies, plaintext is not stored
	match, err := argon2id.ComparePasswordAndHash("segredo123", u.PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)
	assert.NotEqual(t, "segredo123", u.PasswordHash)
}

func TestCreateUserAdminGetsFullSet(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	u, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Email:    "admin@clinica.com",
		Password: "segredo123",
		Role:     "Administrador",
		// A partial list must not survive for an admin
		Permissions: []access.Permission{access.PermUsersView},
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", u.Role)
	assert.Equal(t, access.AllPermissions(), u.Permissions)
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{"missing email", CreateUserRequest{Password: "x", Role: "admin"}},
		{"missing password", CreateUserRequest{Email: "a@b.com", Role: "admin"}},
		{"missing role", CreateUserRequest{Email: "a@b.com", Password: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, &tt.req)
			assert.True(t, apperr.IsValidation(err))
		})
	}
}

func TestUpdateUserAdminOverridePersisted(t *testing.T) {
	repo := newFakeUserRepo()
	id := repo.add(User{
		Email:       "admin@clinica.com",
		Role:        "admin",
		Permissions: []access.Permission{access.PermUsersView}, // stale partial list
	})
	svc := NewUserService(repo)

	nome := "Novo Nome"
	_, err := svc.UpdateUser(context.Background(), id, &UpdateUserRequest{Nome: &nome})
	require.NoError(t, err)

	// Even a name-only edit repairs the stored permission list
	patch := repo.patches[id]
	require.NotNil(t, patch)
	assert.Equal(t, access.AllPermissions(), patch["permissions"])
}

func TestUpdateUserPromotionToAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	id := repo.add(User{
		Email:       "ana@clinica.com",
		Role:        "recepcionista",
		Permissions: []access.Permission{access.PermAppointmentsView},
	})
	svc := NewUserService(repo)

	role := "admin"
	u, err := svc.UpdateUser(context.Background(), id, &UpdateUserRequest{Role: &role})
	require.NoError(t, err)

	assert.Equal(t, "admin", u.Role)
	assert.Equal(t, access.AllPermissions(), u.Permissions)
}

func TestUpdateUserCustomPermissionsForNonAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	id := repo.add(User{
		Email: "ana@clinica.com",
		Role:  "recepcionista",
	})
	svc := NewUserService(repo)

	perms := []access.Permission{access.PermAppointmentsView, access.PermDatesView}
	u, err := svc.UpdateUser(context.Background(), id, &UpdateUserRequest{Permissions: &perms})
	require.NoError(t, err)

	assert.Equal(t, perms, u.Permissions)
}

func TestUpdateUserNameOnlyLeavesNonAdminPermissionsAlone(t *testing.T) {
	repo := newFakeUserRepo()
	id := repo.add(User{
		Email:       "ana@clinica.com",
		Role:        "recepcionista",
		Permissions: []access.Permission{access.PermAppointmentsView},
	})
	svc := NewUserService(repo)

	nome := "Ana Paula"
	_, err := svc.UpdateUser(context.Background(), id, &UpdateUserRequest{Nome: &nome})
	require.NoError(t, err)

	_, touched := repo.patches[id]["permissions"]
	assert.False(t, touched)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	nome := "x"
	_, err := svc.UpdateUser(context.Background(), primitive.NewObjectID().Hex(), &UpdateUserRequest{Nome: &nome})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
