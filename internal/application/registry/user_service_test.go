package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

func newUserServiceWithMocks() (*UserService, *MockRepository[registry.User], *MockRepository[registry.Enterprise], *MockAssociationRepository) {
	users := new(MockRepository[registry.User])
	enterprises := new(MockRepository[registry.Enterprise])
	links := new(MockAssociationRepository)
	svc := NewUserService(users, enterprises, links)
	return svc, users, enterprises, links
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	svc, users, _, _ := newUserServiceWithMocks()
	ctx := context.Background()

	var created *registry.User
	users.On("Create", ctx, mock.AnythingOfType("*registry.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*registry.User)
			created.ID = 1
		}).
		Return(nil)

	resp, err := svc.Create(ctx, CreateUserRequest{
		Name:     "operator",
		Email:    "op@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.True(t, created.VerifyPassword("s3cret-pass"))
	assert.Equal(t, uint(1), resp.ID)
}

func TestUserService_Update_HashesNewPassword(t *testing.T) {
	svc, users, _, _ := newUserServiceWithMocks()
	ctx := context.Background()

	existing, err := registry.NewUser("operator", "op@example.com", "old-password", "", false)
	require.NoError(t, err)
	existing.ID = 1
	users.On("FindByID", ctx, uint(1)).Return(existing, nil)

	password := "new-password-123"
	users.On("Update", ctx, existing, mock.MatchedBy(func(changes map[string]any) bool {
		hash, ok := changes["password"].(string)
		return ok && hash != password
	})).Return(existing, nil)

	_, err = svc.Update(ctx, 1, UpdateUserRequest{Password: &password})
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestUserService_LinkEnterprise_EnterpriseMissing(t *testing.T) {
	svc, users, enterprises, links := newUserServiceWithMocks()
	ctx := context.Background()

	user, err := registry.NewUser("operator", "op@example.com", "s3cret-pass", "", false)
	require.NoError(t, err)
	user.ID = 1
	users.On("FindByID", ctx, uint(1)).Return(user, nil)
	enterprises.On("FindByID", ctx, uint(42)).Return(nil, nil)

	linkErr := svc.LinkEnterprise(ctx, 1, 42)
	var notFound *shared.NotFoundError
	require.ErrorAs(t, linkErr, &notFound)
	assert.Equal(t, "Enterprise", notFound.Kind)
	links.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_ListEnterprises(t *testing.T) {
	svc, _, _, links := newUserServiceWithMocks()
	ctx := context.Background()

	links.On("Links", ctx, registry.UserEnterprises, uint(1)).Return([]uint{10}, nil)

	ids, err := svc.ListEnterprises(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{10}, ids)
}
