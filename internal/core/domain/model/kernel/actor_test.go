package kernel_test

import (
	"testing"

	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create actor with roles", func(t *testing.T) {
		identity := kernel.NewUUID()

		actor, err := kernel.NewActor(identity, kernel.RoleCustomer, kernel.RoleDriver)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.Identity().IsEqual(identity))
		assert.True(t, actor.HasRole(kernel.RoleDriver))
		assert.False(t, actor.HasRole(kernel.RoleAdmin))
	})

	t.Run("should reject empty role set", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID())

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.Role("superuser"))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject zero identity", func(t *testing.T) {
		var identity kernel.UUID

		_, err := kernel.NewActor(identity, kernel.RoleCustomer)

		require.Error(t, err)
	})
}

func TestActor_IsAdmin(t *testing.T) {
	t.Run("admin role grants admin capability", func(t *testing.T) {
		admin, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
		customer, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)

		assert.True(t, admin.IsAdmin())
		assert.False(t, customer.IsAdmin())
	})
}

func TestActor_Scopes(t *testing.T) {
	t.Run("WithRetailer binds retailer scope", func(t *testing.T) {
		retailerID := kernel.NewUUID()
		actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleRetailer)

		bound := actor.WithRetailer(retailerID)

		require.NotNil(t, bound.RetailerID())
		assert.True(t, bound.RetailerID().IsEqual(retailerID))
		assert.Nil(t, actor.RetailerID())
	})

	t.Run("WithPickupPoint binds pickup point scope", func(t *testing.T) {
		pickupPointID := kernel.NewUUID()
		actor, _ := kernel.NewActor(kernel.NewUUID(), kernel.RolePickupPoint)

		bound := actor.WithPickupPoint(pickupPointID)

		require.NotNil(t, bound.PickupPointID())
		assert.True(t, bound.PickupPointID().IsEqual(pickupPointID))
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrActorIsNotConstructed, err)
	})
}
